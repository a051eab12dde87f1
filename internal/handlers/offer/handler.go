package offer

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/offer/model"
	"atithi/internal/domains/offer/model/dto"
	"atithi/internal/domains/offer/service"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Offer
	otel    otel.Otel
}

func New(service service.Offer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/offers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOffer)
		routerGroup.Get("/", handler.GetOffers)
		routerGroup.Get("/{id}", handler.GetOfferByID)
		routerGroup.Patch("/{id}", handler.UpdateOffer)
		routerGroup.Delete("/{id}", handler.DeleteOffer)
	})
}

// CreateOffer handles the creation of a new room offer.
// @Summary Create a new offer
// @Description Create a promotional offer for a room.
// @Tags Offer
// @Accept json
// @Produce json
// @Param request body dto.CreateOfferRequest true "Offer payload"
// @Success 201 {object} response.Message "Offer created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers [post]
// @Security BearerAuth
func (handler *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOffer")
	defer scope.End()

	var req dto.CreateOfferRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create offer")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Offer created successfully by admin " + admin)

	response.WithMessage(w, http.StatusCreated, "Offer created successfully")
}

// GetOffers retrieves all offers based on query parameters.
// @Summary Get all offers
// @Description Retrieve all offers with optional filtering and pagination.
// @Tags Offer
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetOffersResponse] "List of offers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers [get]
func (handler *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOffers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldTitle),
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

	offers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offers retrieved successfully")

	response.WithJSON(w, http.StatusOK, offers)
}

// GetOfferByID retrieves an offer by its ID.
// @Summary Get an offer by ID
// @Description Retrieve an offer by its unique identifier.
// @Tags Offer
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Data[dto.OfferResponse] "Offer details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers/{id} [get]
func (handler *Handler) GetOfferByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOfferByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid offer id")

		response.WithError(w, err)

		return
	}

	offer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get offer by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Offer retrieved successfully")

	response.WithJSON(w, http.StatusOK, offer)
}

// UpdateOffer updates an existing offer by its ID.
// @Summary Update an offer by ID
// @Description Update the details of an existing offer.
// @Tags Offer
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param request body dto.UpdateOfferRequest true "Offer update payload"
// @Success 200 {object} response.Message "Offer updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOffer")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid offer id")

		response.WithError(w, err)

		return
	}

	var req dto.UpdateOfferRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update offer")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Offer updated successfully by admin " + admin)

	response.WithMessage(w, http.StatusOK, "Offer updated successfully")
}

// DeleteOffer deletes an offer by its ID.
// @Summary Delete an offer by ID
// @Description Delete an offer using its unique identifier.
// @Tags Offer
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} response.Message "Offer deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/offers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOffer")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid offer id")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete offer")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminID).(string)
	scope.AddEvent("Offer deleted successfully by admin " + admin)

	response.WithMessage(w, http.StatusOK, "Offer deleted successfully")
}
