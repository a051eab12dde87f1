package whatsapp

import (
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/whatsapp/service"
	"atithi/shared/constant"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Whatsapp
	otel    otel.Otel
}

func New(service service.Whatsapp, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/whatsapp", func(routerGroup chi.Router) {
		routerGroup.Get("/contacts", handler.GetContacts)
		routerGroup.Get("/messages/{phone}", handler.GetThread)
	})
}

// GetContacts lists phone numbers with their latest inbound message.
// @Summary Get whatsapp contacts
// @Description Retrieve distinct phone numbers with the most recent inbound message of each.
// @Tags Whatsapp
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetContactsResponse] "Whatsapp contacts"
// @Failure 500 {object} response.Error
// @Router /v1/whatsapp/contacts [get]
// @Security BearerAuth
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	contacts, err := handler.service.GetContacts(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get whatsapp contacts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Whatsapp contacts retrieved successfully")

	response.WithJSON(w, http.StatusOK, contacts)
}

// GetThread retrieves the full conversation with a phone number.
// @Summary Get a whatsapp thread
// @Description Retrieve every message sent to or received from a phone number, oldest first.
// @Tags Whatsapp
// @Accept json
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} response.Data[dto.GetThreadResponse] "Whatsapp thread"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/whatsapp/messages/{phone} [get]
// @Security BearerAuth
func (handler *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetThread")
	defer scope.End()

	phone := chi.URLParam(r, constant.RequestParamPhone)

	thread, err := handler.service.GetThread(ctx, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get whatsapp thread")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Whatsapp thread retrieved successfully")

	response.WithJSON(w, http.StatusOK, thread)
}
