package report

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/report/model/dto"
	"atithi/internal/domains/report/service"
	"atithi/shared/constant"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetSummary retrieves the revenue and occupancy report.
// @Summary Get reports summary
// @Description Retrieve revenue KPIs, occupancy, ADR, RevPAR and chart data for a date range. Both dates default to today.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SummaryResponse] "Reports summary"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	from, to, err := dto.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid report date range")

		response.WithError(w, err)

		return
	}

	summary, err := handler.service.Summary(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reports summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reports summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
