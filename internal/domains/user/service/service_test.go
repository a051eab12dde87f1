package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/config"
	"atithi/infras/otel/mocks"
	userMocks "atithi/internal/domains/user/mocks"
	"atithi/internal/domains/user/model"
	"atithi/internal/domains/user/model/dto"
	"atithi/internal/domains/user/service"
	cacheMocks "atithi/shared/cache/mocks"
	"atithi/shared/failure"
	"atithi/shared/idgen"
)

func newUserService(ctrl *gomock.Controller) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, idgen.New(), mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestUserService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newUserService(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	req := dto.CreateUserRequest{
		Name:           "Asha Verma",
		Email:          "asha@example.com",
		WhatsappNumber: "+91 98765-43210",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create normalizes whatsapp number",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.Equal(t, "919876543210", user.WhatsappNumber)

						return nil
					})
			},
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newUserService(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "user found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{ID: 1, Name: "Asha Verma", Email: "asha@example.com"}, nil)
			},
		},
		{
			name: "user missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
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
			assert.Equal(t, "asha@example.com", result.Email)
		})
	}
}

func TestNormalizeWhatsappNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "strips formatting", raw: "+91 98765-43210", want: "919876543210"},
		{name: "already clean", raw: "919876543210", want: "919876543210"},
		{name: "empty falls back to zero", raw: "", want: "0"},
		{name: "letters only falls back to zero", raw: "unknown", want: "0"},
		{name: "non-ascii digits are dropped", raw: "1234१२३४५", want: "1234"},
		{name: "non-ascii digits only falls back to zero", raw: "١٢٣٤٥", want: "0"},
		{name: "truncates past the storage limit", raw: "12345678901234567890", want: "123456789012"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.NormalizeWhatsappNumber(tt.raw)

			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
