package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/infras/otel/mocks"
	whatsappMocks "atithi/internal/domains/whatsapp/mocks"
	"atithi/internal/domains/whatsapp/model"
	"atithi/internal/domains/whatsapp/service"
	"atithi/shared/failure"
)

func TestWhatsappService_GetContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := whatsappMocks.NewMockWhatsapp(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	name := "Priya"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "contacts mapped from latest messages",
			setupMock: func() {
				mockRepo.EXPECT().GetContacts(gomock.Any()).Return([]model.Contact{
					{
						Name:        &name,
						Phone:       "919876543210",
						SenderType:  model.SenderTypeUser,
						LastMessage: "Is the deluxe room available?",
						CreatedAt:   time.Now(),
					},
					{
						Phone:       "918800112233",
						SenderType:  model.SenderTypeUser,
						LastMessage: "Thanks!",
						CreatedAt:   time.Now(),
					},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name: "no conversations yet",
			setupMock: func() {
				mockRepo.EXPECT().GetContacts(gomock.Any()).Return([]model.Contact{}, nil)
			},
			wantLen: 0,
		},
		{
			name: "repository failure",
			setupMock: func() {
				mockRepo.EXPECT().GetContacts(gomock.Any()).Return(nil, errors.New("query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetContacts(context.Background())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Contacts, tt.wantLen)

			if tt.wantLen > 0 {
				assert.Equal(t, "919876543210", res.Contacts[0].Phone)
				assert.Equal(t, "Is the deluxe room available?", res.Contacts[0].LastMessage)
			}
		})
	}
}

func TestWhatsappService_GetThread(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := whatsappMocks.NewMockWhatsapp(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		phone     string
		setupMock func()
		wantErr   bool
		wantCode  int
		wantLen   int
	}{
		{
			name:  "thread mapped in order",
			phone: "919876543210",
			setupMock: func() {
				mockRepo.EXPECT().GetThread(gomock.Any(), "919876543210").Return([]model.Message{
					{
						ID:         101,
						FromNumber: "919876543210",
						Message:    "Is the deluxe room available?",
						SenderType: model.SenderTypeUser,
						CreatedAt:  time.Now(),
					},
					{
						ID:         102,
						ToNumber:   "919876543210",
						Message:    "Yes, it is available for your dates.",
						SenderType: model.SenderTypeBot,
						CreatedAt:  time.Now(),
					},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name:      "empty phone is rejected",
			phone:     "",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:  "repository failure",
			phone: "919876543210",
			setupMock: func() {
				mockRepo.EXPECT().GetThread(gomock.Any(), "919876543210").Return(nil, errors.New("query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetThread(context.Background(), tt.phone)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Messages, tt.wantLen)

			if tt.wantLen > 0 {
				assert.Equal(t, "101", res.Messages[0].ID)
				assert.Equal(t, model.SenderTypeUser, res.Messages[0].SenderType)
				assert.Equal(t, model.SenderTypeBot, res.Messages[1].SenderType)
			}
		})
	}
}
