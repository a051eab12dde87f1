package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/config"
	"atithi/infras/otel/mocks"
	paymentMocks "atithi/internal/domains/payment/mocks"
	"atithi/internal/domains/payment/model"
	"atithi/internal/domains/payment/model/dto"
	"atithi/internal/domains/payment/service"
	cacheMocks "atithi/shared/cache/mocks"
	"atithi/shared/failure"
)

func floatPtr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func TestPaymentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	payment := model.Payment{
		ID:             1,
		BookingID:      10,
		UserID:         20,
		Method:         model.MethodPartialOnline,
		Status:         model.StatusPartialPaid,
		Currency:       "INR",
		BillAmount:     1600,
		BillPaidAmount: 400,
	}

	tests := []struct {
		name      string
		req       dto.UpdatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "records a partial payment",
			req:  dto.UpdatePaymentRequest{BillPaidAmount: floatPtr(600)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.InDelta(t, 1000.0, fields[model.FieldBillPaidAmount], 0.001)

						return nil
					})
			},
		},
		{
			name: "payment exactly settled",
			req:  dto.UpdatePaymentRequest{BillPaidAmount: floatPtr(1200), Status: stringPtr(model.StatusPaid)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "overpayment rejected",
			req:  dto.UpdatePaymentRequest{BillPaidAmount: floatPtr(1300)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "empty request rejected",
			req:       dto.UpdatePaymentRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "payment not found",
			req:  dto.UpdatePaymentRequest{Status: stringPtr(model.StatusPaid)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "lookup error",
			req:  dto.UpdatePaymentRequest{Status: stringPtr(model.StatusPaid)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, 1)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPaymentService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "payment found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{ID: 1, BillAmount: 1600, BillPaidAmount: 400}, nil)
			},
		},
		{
			name: "payment missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "1", result.ID)
		})
	}
}
