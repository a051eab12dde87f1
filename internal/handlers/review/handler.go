package review

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/review/service"
	"atithi/shared/constant"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAll)
	})
}

// GetAll lists guest reviews with their author and room.
// @Summary Get reviews
// @Description Retrieve every guest review, newest first, with the reviewer and the reviewed room.
// @Tags Review
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetReviewsResponse] "Reviews"
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAll")
	defer scope.End()

	reviews, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}
