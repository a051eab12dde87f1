package payment

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/payment/model"
	"atithi/internal/domains/payment/model/dto"
	"atithi/internal/domains/payment/service"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Patch("/{id}", handler.UpdatePayment)
	})
}

// GetPayments retrieves all payments based on query parameters.
// @Summary Get all payments
// @Description Retrieve all payments with optional filtering and pagination.
// @Tags Payment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param booking_id query string false "Filter by booking"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "List of payments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
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

	if bookingID, err := shared.ParseID(r.URL.Query().Get(model.FieldBookingID)); err == nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	payments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payments retrieved successfully")

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves a payment by its ID.
// @Summary Get a payment by ID
// @Description Retrieve a payment by its unique identifier.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid payment id")

		response.WithError(w, err)

		return
	}

	payment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment retrieved successfully")

	response.WithJSON(w, http.StatusOK, payment)
}

// UpdatePayment records a payment against a booking bill.
// @Summary Update a payment by ID
// @Description Record an additional paid amount or change method and status. The cumulative paid amount cannot exceed the bill.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Payment update payload"
// @Success 200 {object} response.Message "Payment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid payment id")

		response.WithError(w, err)

		return
	}

	var req dto.UpdatePaymentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Payment updated successfully by admin " + admin)

	response.WithMessage(w, http.StatusOK, "Payment updated successfully")
}
