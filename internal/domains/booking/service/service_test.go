package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/config"
	kafkaMocks "atithi/infras/kafka/mocks"
	"atithi/infras/otel/mocks"
	bookingMocks "atithi/internal/domains/booking/mocks"
	"atithi/internal/domains/booking/model"
	"atithi/internal/domains/booking/model/dto"
	"atithi/internal/domains/booking/service"
	offerMocks "atithi/internal/domains/offer/mocks"
	offerModel "atithi/internal/domains/offer/model"
	paymentMocks "atithi/internal/domains/payment/mocks"
	paymentModel "atithi/internal/domains/payment/model"
	roomMocks "atithi/internal/domains/room/mocks"
	roomModel "atithi/internal/domains/room/model"
	userMocks "atithi/internal/domains/user/mocks"
	userModel "atithi/internal/domains/user/model"
	cacheMocks "atithi/shared/cache/mocks"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/idgen"
)

// passthroughTxRunner invokes the body directly so transaction-scoped paths
// run against mocked repositories.
type passthroughTxRunner struct{}

func (passthroughTxRunner) WithSerializableTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type bookingMockSet struct {
	repo        *bookingMocks.MockBooking
	roomRepo    *roomMocks.MockRoom
	offerRepo   *offerMocks.MockOffer
	userRepo    *userMocks.MockUser
	paymentRepo *paymentMocks.MockPayment
	cache       *cacheMocks.MockRedisCache
	kafka       *kafkaMocks.MockClient
}

func newBookingService(ctrl *gomock.Controller) (service.Booking, bookingMockSet) {
	set := bookingMockSet{
		repo:        bookingMocks.NewMockBooking(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		offerRepo:   offerMocks.NewMockOffer(ctrl),
		userRepo:    userMocks.NewMockUser(ctrl),
		paymentRepo: paymentMocks.NewMockPayment(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		set.repo,
		set.roomRepo,
		set.offerRepo,
		set.userRepo,
		set.paymentRepo,
		passthroughTxRunner{},
		cfg,
		set.cache,
		set.kafka,
		idgen.New(),
		mocks.NewOtel(),
	)

	return svc, set
}

func TestNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "single night", checkIn: day(1), checkOut: day(2), want: 1},
		{name: "four nights", checkIn: day(1), checkOut: day(5), want: 4},
		{name: "partial day rounds up", checkIn: day(1), checkOut: day(2).Add(6 * time.Hour), want: 2},
		{name: "sub-day stay counts as one night", checkIn: day(1), checkOut: day(1).Add(3 * time.Hour), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	checkIn := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	room := roomModel.Room{ID: 100, TotalRooms: 2, Price: 800}

	tests := []struct {
		name          string
		checkIn       time.Time
		checkOut      time.Time
		setupMock     func()
		wantErr       bool
		wantAvailable bool
	}{
		{
			name:     "room has capacity left",
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				set.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantAvailable: true,
		},
		{
			name:     "every unit already booked",
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				set.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)
			},
			wantAvailable: false,
		},
		{
			name:     "unknown room reports unavailable",
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantAvailable: false,
		},
		{
			name:      "inverted range rejected",
			checkIn:   checkOut,
			checkOut:  checkIn,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:     "room lookup error",
			checkIn:  checkIn,
			checkOut: checkOut,
			setupMock: func() {
				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.CheckAvailability(context.Background(), room.ID, tt.checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.Available)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		status    string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name:   "confirmed to checked in",
			status: model.StatusCheckedIn,
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: 1, Status: model.StatusConfirmed}, nil)

				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "unknown status",
			status:    "archived",
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "booking not found",
			status: model.StatusCancelled,
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "checked out is terminal",
			status: model.StatusCancelled,
			setupMock: func() {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: 1, Status: model.StatusCheckedOut}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: tt.status}, 1)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_GetDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	detail := &model.BookingDetail{
		Booking:  model.Booking{ID: 1, RoomID: 100, UserID: 200, Status: model.StatusConfirmed},
		UserName: "Asha Verma",
		RoomName: "Deluxe Suite",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "detail found",
			setupMock: func() {
				set.repo.EXPECT().
					GetDetail(gomock.Any(), int64(1)).
					Return(detail, nil)
			},
		},
		{
			name: "detail missing",
			setupMock: func() {
				set.repo.EXPECT().
					GetDetail(gomock.Any(), int64(1)).
					Return(nil, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetDetail(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "1", result.ID)
			assert.Equal(t, detail.UserName, result.UserName)
			assert.Equal(t, detail.RoomName, result.RoomName)
		})
	}
}

func TestComputeQuote(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
	}

	offerPrice := 800.0
	room := roomModel.Room{ID: 100, Price: 1000}

	tests := []struct {
		name      string
		offer     *offerModel.Offer
		checkIn   time.Time
		checkOut  time.Time
		wantQuote service.Quote
	}{
		{
			name:      "offer price wins over base price",
			offer:     &offerModel.Offer{ID: 1, RoomID: 100, OfferPrice: &offerPrice},
			checkIn:   day(1),
			checkOut:  day(3),
			wantQuote: service.Quote{Nights: 2, PricePerNight: 800, BillAmount: 1600},
		},
		{
			name:      "no offer falls back to base price",
			checkIn:   day(1),
			checkOut:  day(3),
			wantQuote: service.Quote{Nights: 2, PricePerNight: 1000, BillAmount: 2000},
		},
		{
			name:      "offer without a price falls back to base price",
			offer:     &offerModel.Offer{ID: 1, RoomID: 100, DiscountPercent: 20},
			checkIn:   day(1),
			checkOut:  day(3),
			wantQuote: service.Quote{Nights: 2, PricePerNight: 1000, BillAmount: 2000},
		},
		{
			name:      "partial night rounds up",
			checkIn:   day(1),
			checkOut:  day(2).Add(6 * time.Hour),
			wantQuote: service.Quote{Nights: 2, PricePerNight: 1000, BillAmount: 2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantQuote, service.ComputeQuote(room, tt.offer, tt.checkIn, tt.checkOut))
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	room := roomModel.Room{ID: 100, TotalRooms: 2, Price: 1000}
	offerPrice := 800.0

	baseReq := dto.CreateBookingRequest{
		RoomID:   "100",
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-03",
		Guest: &dto.GuestInfo{
			Name:           "Priya",
			Email:          "priya@example.com",
			WhatsappNumber: "+91 98765-43210",
		},
		Adults:        2,
		PaymentMethod: paymentModel.MethodOffline,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.CreateBookingResponse)
	}{
		{
			name: "two nights at the offer price",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				set.userRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, guest userModel.User) error {
						assert.Equal(t, "919876543210", guest.WhatsappNumber)

						return nil
					})
				set.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
				set.offerRepo.EXPECT().
					FindWinningTx(gomock.Any(), gomock.Any(), int64(100), gomock.Any(), gomock.Any()).
					Return(&offerModel.Offer{ID: 1, RoomID: 100, OfferPrice: &offerPrice}, nil)
				set.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.Equal(t, int64(100), booking.RoomID)

						return nil
					})
				set.paymentRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment paymentModel.Payment) error {
						assert.Equal(t, 1600.0, payment.BillAmount)
						assert.Equal(t, paymentModel.StatusPending, payment.Status)

						return nil
					})
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				assert.Equal(t, 2, res.Nights)
				assert.Equal(t, 800.0, res.PricePerNight)
				assert.Equal(t, 1600.0, res.BillAmount)
				assert.Equal(t, model.StatusConfirmed, res.Status)
				assert.NotEmpty(t, res.BookingID)
			},
		},
		{
			name: "no capacity left",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				set.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.repo.EXPECT().CountTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(2, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "room not found",
			req:  baseReq,
			setupMock: func() {
				set.roomRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "invalid room id",
			req: dto.CreateBookingRequest{
				RoomID:        "abc",
				CheckIn:       "2024-06-01",
				CheckOut:      "2024-06-03",
				Guest:         baseReq.Guest,
				PaymentMethod: paymentModel.MethodOffline,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestBookingService_Reschedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newBookingService(ctrl)

	set.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	room := roomModel.Room{ID: 100, TotalRooms: 2, Price: 1000}
	existing := model.Booking{ID: 1, RoomID: 100, UserID: 7, Status: model.StatusConfirmed}

	baseReq := dto.RescheduleBookingRequest{
		RoomID:   "100",
		CheckIn:  "2024-06-10",
		CheckOut: "2024-06-12",
		Guest: dto.GuestInfo{
			Name:  "Priya",
			Email: "priya@example.com",
		},
		Adults:        2,
		PaymentMethod: paymentModel.MethodOffline,
	}

	tests := []struct {
		name      string
		req       dto.RescheduleBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "moved booking does not block itself",
			req:  baseReq,
			setupMock: func() {
				set.repo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(existing, nil)
				set.roomRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				set.repo.EXPECT().
					CountTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (int, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, existing.ID, args["exclude_id"])

						return 0, nil
					})
				set.offerRepo.EXPECT().
					FindWinningTx(gomock.Any(), gomock.Any(), int64(100), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				set.userRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusRescheduled, fields[model.FieldStatus])

						return nil
					})
				set.paymentRepo.EXPECT().
					GetLatestByBookingTx(gomock.Any(), gomock.Any(), existing.ID).
					Return(&paymentModel.Payment{ID: 50, BookingID: existing.ID}, nil)
				set.paymentRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 2000.0, fields[paymentModel.FieldBillAmount])

						return nil
					})
			},
		},
		{
			name: "unknown booking with a bad room id reports not found",
			req: dto.RescheduleBookingRequest{
				RoomID:        "abc",
				CheckIn:       "2024-06-10",
				CheckOut:      "2024-06-12",
				Guest:         baseReq.Guest,
				PaymentMethod: paymentModel.MethodOffline,
			},
			setupMock: func() {
				set.repo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown booking with inverted dates reports not found",
			req: dto.RescheduleBookingRequest{
				RoomID:        "100",
				CheckIn:       "2024-06-12",
				CheckOut:      "2024-06-10",
				Guest:         baseReq.Guest,
				PaymentMethod: paymentModel.MethodOffline,
			},
			setupMock: func() {
				set.repo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled booking cannot be rescheduled",
			req:  baseReq,
			setupMock: func() {
				set.repo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: 1, Status: model.StatusCancelled}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "bad room id on a known booking",
			req: dto.RescheduleBookingRequest{
				RoomID:        "abc",
				CheckIn:       "2024-06-10",
				CheckOut:      "2024-06-12",
				Guest:         baseReq.Guest,
				PaymentMethod: paymentModel.MethodOffline,
			},
			setupMock: func() {
				set.repo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(existing, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Reschedule(context.Background(), tt.req, 1)
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
