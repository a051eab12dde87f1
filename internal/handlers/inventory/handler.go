package inventory

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/inventory/model/dto"
	"atithi/internal/domains/inventory/service"
	"atithi/shared"
	"atithi/shared/constant"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Get("/search", handler.SearchInventory)
		routerGroup.Get("/{propertyToken}", handler.GetInventoryDetails)
	})
}

// SearchInventory proxies a market hotel search.
// @Summary Search hotel inventory
// @Description Search live hotel listings for a location. Dates default to today and tomorrow.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Param adults query integer false "Number of adults"
// @Success 200 {object} response.Data[dto.SearchResponse] "Search results"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/search [get]
// @Security BearerAuth
func (handler *Handler) SearchInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchInventory")
	defer scope.End()

	req := searchRequestFromQuery(r)

	result, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search inventory")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory searched successfully")

	response.WithJSON(w, http.StatusOK, result)
}

// GetInventoryDetails proxies a single property lookup.
// @Summary Get hotel property details
// @Description Retrieve detailed rates, images and featured prices for a property.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param propertyToken path string true "Property token"
// @Param q query string true "Search query"
// @Param check_in query string false "Check-in date (YYYY-MM-DD)"
// @Param check_out query string false "Check-out date (YYYY-MM-DD)"
// @Param adults query integer false "Number of adults"
// @Success 200 {object} response.Data[dto.DetailResponse] "Property details"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory/{propertyToken} [get]
// @Security BearerAuth
func (handler *Handler) GetInventoryDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInventoryDetails")
	defer scope.End()

	req := searchRequestFromQuery(r)
	req.PropertyToken = chi.URLParam(r, "propertyToken")

	result, err := handler.service.Details(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory details")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inventory details retrieved successfully")

	response.WithJSON(w, http.StatusOK, result)
}

func searchRequestFromQuery(r *http.Request) dto.SearchRequest {
	req := dto.SearchRequest{
		Query:    r.URL.Query().Get("q"),
		CheckIn:  r.URL.Query().Get("check_in"),
		CheckOut: r.URL.Query().Get("check_out"),
	}

	if adultsStr := r.URL.Query().Get("adults"); adultsStr != "" {
		if adults, err := shared.ConvertStringToInt(adultsStr); err == nil {
			req.Adults = adults
		}
	}

	return req
}
