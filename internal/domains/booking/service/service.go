package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"atithi/config"
	"atithi/infras/kafka"
	"atithi/infras/otel"
	"atithi/internal/domains/booking/model"
	"atithi/internal/domains/booking/model/dto"
	"atithi/internal/domains/booking/repository"
	offerModel "atithi/internal/domains/offer/model"
	offerRepo "atithi/internal/domains/offer/repository"
	paymentModel "atithi/internal/domains/payment/model"
	paymentRepo "atithi/internal/domains/payment/repository"
	roomModel "atithi/internal/domains/room/model"
	roomRepo "atithi/internal/domains/room/repository"
	userModel "atithi/internal/domains/user/model"
	userRepo "atithi/internal/domains/user/repository"
	"atithi/shared"
	"atithi/shared/cache"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/idgen"
	"atithi/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	EventBookingCreated       = "booking.created"
	EventBookingRescheduled   = "booking.rescheduled"
	EventBookingStatusChanged = "booking.status_changed"

	msgRoomNotFound = "room not found"
	msgNoCapacity   = "no rooms available for the selected dates"
	hoursPerNight   = 24
)

// Quote is the price computed for a stay.
type Quote struct {
	Nights        int
	PricePerNight float64
	BillAmount    float64
}

// TxRunner runs fn inside a serializable transaction.
type TxRunner interface {
	WithSerializableTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Booking interface {
	CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Reschedule(ctx context.Context, req dto.RescheduleBookingRequest, id int64) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id int64) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetDetail(ctx context.Context, id int64) (dto.BookingDetailResponse, error)
	GetUpcoming(ctx context.Context) (dto.GetBookingDetailsResponse, error)
	GetTodayCheckIns(ctx context.Context) (dto.GetBookingDetailsResponse, error)
	GetTodayCheckOuts(ctx context.Context) (dto.GetBookingDetailsResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	offerRepo   offerRepo.Offer
	userRepo    userRepo.User
	paymentRepo paymentRepo.Payment
	db          TxRunner
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	idgen       idgen.Generator
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	offerRepo offerRepo.Offer,
	userRepo userRepo.User,
	paymentRepo paymentRepo.Payment,
	db TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	idgen idgen.Generator,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		offerRepo:   offerRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		db:          db,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafkaClient,
		idgen:       idgen,
		otel:        otel,
	}
}

// Nights rounds a fractional stay up, so any nonzero duration counts as at
// least one night.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / hoursPerNight))
	if nights < 1 {
		nights = 1
	}

	return nights
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !checkOut.After(checkIn) {
		return res, failure.UnprocessableEntity("check-out must be after check-in") //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return dto.AvailabilityResponse{Available: false, Message: msgRoomNotFound}, nil
	}

	overlapping, err := s.repo.Count(ctx, repository.OverlapFilter(roomID, checkIn, checkOut, 0))
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping bookings")

		return res, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	if overlapping >= room.Inventory() {
		return dto.AvailabilityResponse{Available: false, Message: msgNoCapacity}, nil
	}

	return dto.AvailabilityResponse{Available: true}, nil
}

// ComputeQuote prices a stay: the winning offer's price per night when one
// exists, the room's base price otherwise, times the number of nights.
func ComputeQuote(room roomModel.Room, offer *offerModel.Offer, checkIn, checkOut time.Time) Quote {
	pricePerNight := room.Price
	if offer != nil && offer.OfferPrice != nil {
		pricePerNight = *offer.OfferPrice
	}

	nights := Nights(checkIn, checkOut)

	return Quote{
		Nights:        nights,
		PricePerNight: pricePerNight,
		BillAmount:    pricePerNight * float64(nights),
	}
}

// computeQuoteTx prices the stay inside the caller's transaction so the offer
// read is part of the same snapshot as the overlap count.
func (s *serviceImpl) computeQuoteTx(ctx context.Context, tx *sqlx.Tx, room roomModel.Room, checkIn, checkOut time.Time) (Quote, error) {
	offer, err := s.offerRepo.FindWinningTx(ctx, tx, room.ID, checkIn, checkOut)
	if err != nil {
		return Quote{}, fmt.Errorf("failed to find winning offer: %w", err)
	}

	return ComputeQuote(room, offer, checkIn, checkOut), nil
}

// ensureCapacityTx rejects the (N+1)-th overlapping booking for a room with N
// physical units. Runs inside a serializable transaction so a concurrent
// insert against the same room and range aborts one of the two.
func (s *serviceImpl) ensureCapacityTx(ctx context.Context, tx *sqlx.Tx, room roomModel.Room, checkIn, checkOut time.Time, excludeID int64) error {
	overlapping, err := s.repo.CountTx(ctx, tx, repository.OverlapFilter(room.ID, checkIn, checkOut, excludeID))
	if err != nil {
		return fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	if overlapping >= room.Inventory() {
		return failure.Conflict(msgNoCapacity) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) resolveGuestTx(ctx context.Context, tx *sqlx.Tx, req dto.CreateBookingRequest) (userModel.User, error) {
	if req.UserID != nil {
		userID, err := shared.ParseID(*req.UserID)
		if err != nil {
			return userModel.User{}, failure.BadRequestFromString("invalid user id") //nolint:wrapcheck
		}

		user, err := s.userRepo.GetTx(ctx, tx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
		if err != nil {
			return userModel.User{}, fmt.Errorf("failed to get user: %w", err)
		}

		if user.ID == 0 {
			return userModel.User{}, failure.NotFound("user not found") //nolint:wrapcheck
		}

		return user, nil
	}

	if req.Guest == nil {
		return userModel.User{}, failure.BadRequestFromString("either user_id or guest is required") //nolint:wrapcheck
	}

	email := req.Guest.Email
	if email == "" {
		email = userModel.PlaceholderEmail(timezone.Now().UnixMilli())
	}

	guest := userModel.User{
		ID:             s.idgen.NextID(),
		Name:           req.Guest.Name,
		Email:          email,
		WhatsappNumber: userModel.NormalizeWhatsappNumber(req.Guest.WhatsappNumber),
	}

	if err := s.userRepo.InsertTx(ctx, tx, guest); err != nil {
		return userModel.User{}, fmt.Errorf("failed to create guest: %w", err)
	}

	return guest, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomID, err := shared.ParseID(req.RoomID)
	if err != nil {
		return res, failure.BadRequestFromString("invalid room id") //nolint:wrapcheck
	}

	checkIn, checkOut, err := dto.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, err
	}

	var (
		booking model.Booking
		quote   Quote
	)

	err = s.db.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == 0 {
			return failure.NotFound(msgRoomNotFound) //nolint:wrapcheck
		}

		guest, err := s.resolveGuestTx(ctx, tx, req)
		if err != nil {
			return err
		}

		if err = s.ensureCapacityTx(ctx, tx, room, checkIn, checkOut, 0); err != nil {
			return err
		}

		quote, err = s.computeQuoteTx(ctx, tx, room, checkIn, checkOut)
		if err != nil {
			return err
		}

		booking = model.Booking{
			ID:       s.idgen.NextID(),
			RoomID:   room.ID,
			UserID:   guest.ID,
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Status:   model.StatusConfirmed,
			Adults:   req.Adults,
			Children: req.Children,
		}

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		payment := paymentModel.Payment{
			ID:             s.idgen.NextID(),
			BookingID:      booking.ID,
			UserID:         guest.ID,
			Method:         req.PaymentMethod,
			Status:         paymentModel.StatusPending,
			Currency:       constant.Currency,
			BillAmount:     quote.BillAmount,
			BillPaidAmount: 0,
		}

		if err = s.paymentRepo.InsertTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	s.publishEvent(ctx, EventBookingCreated, booking, quote.BillAmount)
	s.invalidateListCaches(ctx)

	return dto.CreateBookingResponse{
		BookingID:     shared.FormatID(booking.ID),
		Status:        booking.Status,
		Nights:        quote.Nights,
		PricePerNight: quote.PricePerNight,
		BillAmount:    quote.BillAmount,
	}, nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, req dto.RescheduleBookingRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	var (
		booking model.Booking
		quote   Quote
	)

	err = s.db.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == 0 {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if booking.Status == model.StatusCancelled {
			return failure.Conflict("cannot reschedule a cancelled booking") //nolint:wrapcheck
		}

		// Request validation runs after the existence check so an unknown
		// booking reports not-found even when the payload is also bad.
		roomID, err := shared.ParseID(req.RoomID)
		if err != nil {
			return failure.BadRequestFromString("invalid room id") //nolint:wrapcheck
		}

		checkIn, checkOut, err := dto.ParseDateRange(req.CheckIn, req.CheckOut)
		if err != nil {
			return err
		}

		room, err := s.roomRepo.GetTx(ctx, tx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == 0 {
			return failure.NotFound(msgRoomNotFound) //nolint:wrapcheck
		}

		if err = s.ensureCapacityTx(ctx, tx, room, checkIn, checkOut, booking.ID); err != nil {
			return err
		}

		quote, err = s.computeQuoteTx(ctx, tx, room, checkIn, checkOut)
		if err != nil {
			return err
		}

		email := req.Guest.Email
		if email == "" {
			email = userModel.PlaceholderEmail(timezone.Now().UnixMilli())
		}

		// The guest row is "whoever currently holds this booking", so it
		// is rewritten in place rather than snapshotted.
		guestFields := map[string]any{
			userModel.FieldName:           req.Guest.Name,
			userModel.FieldEmail:          email,
			userModel.FieldWhatsappNumber: userModel.NormalizeWhatsappNumber(req.Guest.WhatsappNumber),
			constant.FieldUpdatedAt:       timezone.Now(),
		}

		if err = s.userRepo.UpdateTx(ctx, tx, guestFields, shared.FilterByID(booking.UserID, userModel.FieldID, userModel.TableName)); err != nil {
			return fmt.Errorf("failed to update guest: %w", err)
		}

		bookingFields := map[string]any{
			model.FieldRoomID:       room.ID,
			model.FieldCheckIn:      checkIn,
			model.FieldCheckOut:     checkOut,
			model.FieldStatus:       model.StatusRescheduled,
			model.FieldAdults:       req.Adults,
			model.FieldChildren:     req.Children,
			constant.FieldUpdatedAt: timezone.Now(),
		}

		if err = s.repo.UpdateTx(ctx, tx, bookingFields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		booking.RoomID = room.ID
		booking.CheckIn = checkIn
		booking.CheckOut = checkOut
		booking.Status = model.StatusRescheduled
		booking.Adults = req.Adults
		booking.Children = req.Children

		latest, err := s.paymentRepo.GetLatestByBookingTx(ctx, tx, booking.ID)
		if err != nil {
			return fmt.Errorf("failed to get latest payment: %w", err)
		}

		// A missing payment row is non-fatal; the booking and guest
		// changes are kept.
		if latest == nil {
			log.Warn().Int64("booking_id", booking.ID).Msg("no payment row to update on reschedule")

			return nil
		}

		paymentFields := map[string]any{
			paymentModel.FieldMethod:     req.PaymentMethod,
			paymentModel.FieldBillAmount: quote.BillAmount,
			constant.FieldUpdatedAt:      timezone.Now(),
		}

		if err = s.paymentRepo.UpdateTx(ctx, tx, paymentFields, shared.FilterByID(latest.ID, paymentModel.FieldID, paymentModel.TableName)); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to reschedule booking")

		return err
	}

	s.publishEvent(ctx, EventBookingRescheduled, booking, quote.BillAmount)
	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !model.ValidStatus(req.Status) {
		return failure.BadRequestFromString("unknown booking status") //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot change status from %q to %q", booking.Status, req.Status)) //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:       req.Status,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status

	s.publishEvent(ctx, EventBookingStatusChanged, booking, 0)
	s.invalidateListCaches(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetDetail(ctx context.Context, id int64) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking detail")

		return res, fmt.Errorf("failed to get booking detail: %w", err)
	}

	if detail == nil {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(*detail)

	return res, nil
}

func (s *serviceImpl) GetUpcoming(ctx context.Context) (dto.GetBookingDetailsResponse, error) {
	return s.listDetails(ctx, "GetUpcoming", s.repo.GetUpcoming)
}

func (s *serviceImpl) GetTodayCheckIns(ctx context.Context) (dto.GetBookingDetailsResponse, error) {
	return s.listDetails(ctx, "GetTodayCheckIns", s.repo.GetTodayCheckIns)
}

func (s *serviceImpl) GetTodayCheckOuts(ctx context.Context) (dto.GetBookingDetailsResponse, error) {
	return s.listDetails(ctx, "GetTodayCheckOuts", s.repo.GetTodayCheckOuts)
}

func (s *serviceImpl) listDetails(ctx context.Context, name string, read func(context.Context, time.Time) ([]model.BookingDetail, error)) (res dto.GetBookingDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+name)
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	details, err := read(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to list booking details")

		return res, fmt.Errorf("failed to list booking details: %w", err)
	}

	res.FromModels(details)

	return res, nil
}

// publishEvent emits a lifecycle event to the booking topic. Delivery is
// best-effort: a broker failure is logged, never surfaced to the caller.
func (s *serviceImpl) publishEvent(ctx context.Context, event string, booking model.Booking, billAmount float64) {
	go func() {
		c := context.WithoutCancel(ctx)

		payload := dto.BookingEvent{
			Event:      event,
			BookingID:  shared.FormatID(booking.ID),
			RoomID:     shared.FormatID(booking.RoomID),
			UserID:     shared.FormatID(booking.UserID),
			CheckIn:    timezone.Format(booking.CheckIn, constant.DateOnlyFormat),
			CheckOut:   timezone.Format(booking.CheckOut, constant.DateOnlyFormat),
			Status:     booking.Status,
			BillAmount: billAmount,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		}

		message := kafka.Message{
			Key:   shared.FormatID(booking.ID),
			Value: payload,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
