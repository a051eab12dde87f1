package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/infras/otel/mocks"
	reviewMocks "atithi/internal/domains/review/mocks"
	"atithi/internal/domains/review/model"
	"atithi/internal/domains/review/service"
)

func TestReviewService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reviewMocks.NewMockReview(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCount int
	}{
		{
			name: "reviews mapped with reviewer and room",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Review{
					{
						ID:        201,
						UserID:    7,
						RoomID:    100,
						Rating:    5,
						Comment:   "Spotless room, great breakfast.",
						CreatedAt: time.Now(),
						UserName:  "Priya",
						RoomName:  "Deluxe Suite",
					},
					{
						ID:        202,
						UserID:    8,
						RoomID:    101,
						Rating:    3,
						Comment:   "AC was noisy.",
						CreatedAt: time.Now().Add(-time.Hour),
						UserName:  "Arjun",
						RoomName:  "Standard Twin",
					},
				}, nil)
			},
			wantCount: 2,
		},
		{
			name: "no reviews yet",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Review{}, nil)
			},
			wantCount: 0,
		},
		{
			name: "repository failure",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, res.Count)
			assert.Len(t, res.Reviews, tt.wantCount)

			if tt.wantCount > 0 {
				assert.Equal(t, "201", res.Reviews[0].ID)
				assert.Equal(t, "Priya", res.Reviews[0].User.Name)
				assert.Equal(t, "7", res.Reviews[0].User.ID)
				assert.Equal(t, "Deluxe Suite", res.Reviews[0].Room.Name)
				assert.Equal(t, 5, res.Reviews[0].Rating)
			}
		})
	}
}
