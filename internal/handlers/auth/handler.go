package auth

import (
	"context"
	"net/http"

	"atithi/infras/otel"
	"atithi/internal/domains/auth/model/dto"
	"atithi/internal/domains/auth/service"
	"atithi/shared"
	"atithi/shared/constant"
	"atithi/shared/failure"
	"atithi/shared/validator"
	"atithi/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the auth routes. Register, login and refresh stay public;
// logout and me require a valid access token.
func (handler *Handler) Router(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)

		r.Group(func(protected chi.Router) {
			protected.Use(authMiddleware)

			protected.Post("/logout", handler.Logout)
			protected.Get("/me", handler.Me)
		})
	})
}

// Register handles admin registration
// @Summary Register a new admin
// @Description Register a new admin with the provided details.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Message "Admin registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin registered successfully")

	response.WithMessage(w, http.StatusCreated, "Admin registered successfully")
}

// Login handles admin login
// @Summary Login an admin
// @Description Login an admin with the provided credentials.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse] "Admin logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh admin tokens
// @Description Exchange a valid refresh token for a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse] "Tokens refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tokens refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Logout revokes the persisted refresh token of the current admin.
// @Summary Logout the current admin
// @Description Revoke the refresh token so it can no longer be exchanged.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Admin logged out successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("missing admin identity")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Logout(ctx, adminID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged out successfully")

	response.WithMessage(w, http.StatusOK, "Admin logged out successfully")
}

// Me returns the profile of the current admin.
// @Summary Get the current admin
// @Description Retrieve the profile of the authenticated admin.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.AdminResponse] "Admin profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	adminID, err := adminIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("missing admin identity")

		response.WithError(w, err)

		return
	}

	admin, err := handler.service.Me(ctx, adminID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, admin)
}

func adminIDFromContext(ctx context.Context) (int64, error) {
	raw, ok := ctx.Value(constant.ContextKeyAdminID).(string)
	if !ok || raw == "" {
		return 0, failure.Unauthorized("missing admin identity") //nolint:wrapcheck
	}

	return shared.ParseID(raw)
}
