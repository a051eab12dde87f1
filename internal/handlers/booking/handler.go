package booking

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/booking/model"
	"atithi/internal/domains/booking/model/dto"
	"atithi/internal/domains/booking/service"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/upcoming", handler.GetUpcoming)
		routerGroup.Get("/today/check-ins", handler.GetTodayCheckIns)
		routerGroup.Get("/today/check-outs", handler.GetTodayCheckOuts)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}/reschedule", handler.RescheduleBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
	})
}

// CheckAvailability reports whether a room can take one more booking for a
// date range.
// @Summary Check room availability
// @Description Check whether a room has capacity left for the given date range.
// @Tags Booking
// @Accept json
// @Produce json
// @Param room_id query string true "Room ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	roomID, err := shared.ParseID(r.URL.Query().Get(model.FieldRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room id")

		response.WithError(w, err)

		return
	}

	checkIn, checkOut, err := dto.ParseDateRange(r.URL.Query().Get(model.FieldCheckIn), r.URL.Query().Get(model.FieldCheckOut))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid date range")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.CheckAvailability(ctx, roomID, checkIn, checkOut)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// CreateBooking creates a booking together with its guest and payment rows.
// @Summary Create a new booking
// @Description Create a booking for an existing user or a walk-in guest. Capacity and pricing are resolved atomically.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Booking created successfully by admin " + admin)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with optional filtering and pagination.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldStatus),
				Table:    model.TableName,
			},
		},
	}

	if roomID, err := shared.ParseID(r.URL.Query().Get(model.FieldRoomID)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking with its guest, room and latest payment.
// @Summary Get a booking by ID
// @Description Retrieve a booking with guest, room and latest payment details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingDetailResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking id")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.GetDetail(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking retrieved successfully")

	response.WithJSON(w, http.StatusOK, booking)
}

// RescheduleBooking moves a booking to a new room or date range.
// @Summary Reschedule a booking
// @Description Change room, dates or guest details of a booking. Capacity is re-checked excluding the booking itself.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RescheduleBookingRequest true "Reschedule payload"
// @Success 200 {object} response.Message "Booking rescheduled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reschedule [put]
// @Security BearerAuth
func (handler *Handler) RescheduleBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking id")

		response.WithError(w, err)

		return
	}

	var req dto.RescheduleBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reschedule(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule booking")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Booking rescheduled successfully by admin " + admin)

	response.WithMessage(w, http.StatusOK, "Booking rescheduled successfully")
}

// UpdateBookingStatus moves a booking through its lifecycle.
// @Summary Update booking status
// @Description Transition a booking to a new status. Invalid transitions are rejected.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Status payload"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid booking id")

		response.WithError(w, err)

		return
	}

	var req dto.UpdateStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Booking status updated successfully by admin " + admin)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// GetUpcoming retrieves bookings with a check-in from today onward.
// @Summary Get upcoming bookings
// @Description Retrieve bookings whose check-in date is today or later.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingDetailsResponse] "Upcoming bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/upcoming [get]
// @Security BearerAuth
func (handler *Handler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUpcoming")
	defer scope.End()

	bookings, err := handler.service.GetUpcoming(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get upcoming bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Upcoming bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetTodayCheckIns retrieves bookings checking in today.
// @Summary Get today's check-ins
// @Description Retrieve bookings with a check-in date of today.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingDetailsResponse] "Today's check-ins"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/today/check-ins [get]
// @Security BearerAuth
func (handler *Handler) GetTodayCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodayCheckIns")
	defer scope.End()

	bookings, err := handler.service.GetTodayCheckIns(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today check-ins")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Today check-ins retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetTodayCheckOuts retrieves today's departures, including overstays.
// @Summary Get today's check-outs
// @Description Retrieve bookings departing today plus overdue stays not yet checked out.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingDetailsResponse] "Today's check-outs"
// @Failure 500 {object} response.Error
// @Router /v1/bookings/today/check-outs [get]
// @Security BearerAuth
func (handler *Handler) GetTodayCheckOuts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodayCheckOuts")
	defer scope.End()

	bookings, err := handler.service.GetTodayCheckOuts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get today check-outs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Today check-outs retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}
