package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/config"
	"atithi/infras/otel/mocks"
	dashboardMocks "atithi/internal/domains/dashboard/mocks"
	"atithi/internal/domains/dashboard/model"
	"atithi/internal/domains/dashboard/service"
	cacheMocks "atithi/shared/cache/mocks"
)

func TestDashboardService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := dashboardMocks.NewMockDashboard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	summary := model.Summary{
		TotalUsers:       40,
		NewUsersToday:    3,
		BookingsToday:    5,
		CheckInsToday:    2,
		CheckOutsToday:   1,
		UpcomingBookings: 7,
		RevenueToday:     12500,
	}

	statuses := []model.StatusCount{
		{Status: "confirmed", Count: 4},
		{Status: "checked in", Count: 2},
	}

	minutes := []model.MinuteCount{
		{Minute: time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC), Count: 2},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "aggregates all three queries",
			setupMock: func() {
				mockRepo.EXPECT().
					Summary(gomock.Any(), gomock.Any()).
					Return(summary, nil)

				mockRepo.EXPECT().
					StatusBreakdown(gomock.Any()).
					Return(statuses, nil)

				mockRepo.EXPECT().
					BookingsPerMinute(gomock.Any(), gomock.Any()).
					Return(minutes, nil)
			},
		},
		{
			name: "summary query fails",
			setupMock: func() {
				mockRepo.EXPECT().
					Summary(gomock.Any(), gomock.Any()).
					Return(model.Summary{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Summary(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, summary.TotalUsers, result.TotalUsers)
			assert.Equal(t, summary.RevenueToday, result.RevenueToday)
			assert.Len(t, result.StatusBreakdown, 2)
			assert.Len(t, result.BookingsPerMinute, 1)
		})
	}
}
