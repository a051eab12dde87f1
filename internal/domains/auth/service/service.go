package service

import (
	"context"
	"fmt"

	"atithi/config"
	"atithi/infras/jwt"
	"atithi/infras/otel"
	"atithi/internal/domains/auth/model"
	"atithi/internal/domains/auth/model/dto"
	"atithi/internal/domains/auth/repository"
	"atithi/shared"
	"atithi/shared/constant"
	gDto "atithi/shared/dto"
	"atithi/shared/failure"
	"atithi/shared/idgen"
	"atithi/shared/password"
	"atithi/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, adminID int64) error
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Me(ctx context.Context, adminID int64) (dto.AdminResponse, error)
}

type serviceImpl struct {
	repo       repository.Admin
	cfg        *config.Config
	idgen      idgen.Generator
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(repo repository.Admin, cfg *config.Config, idgen idgen.Generator, otel otel.Otel, jwtService jwt.JWT) Auth {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		idgen:      idgen,
		otel:       otel,
		jwtService: jwtService,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return failure.Conflict("email already registered") //nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := model.Admin{
		ID:       s.idgen.NextID(),
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}

	if err = s.repo.Insert(ctx, admin); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		return res, failure.Unauthorized("invalid email or password") //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, admin.Password); err != nil {
		return res, failure.Unauthorized("invalid email or password") //nolint:wrapcheck
	}

	pair, err := s.jwtService.GenerateTokenPair(shared.FormatID(admin.ID), admin.Email, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err = s.persistRefreshToken(ctx, admin.ID, &pair.RefreshToken); err != nil {
		return res, err
	}

	res.AccessToken = pair.AccessToken
	res.RefreshToken = pair.RefreshToken
	res.TokenType = pair.TokenType
	res.ExpiresIn = pair.ExpiresIn
	res.Admin.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, adminID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.persistRefreshToken(ctx, adminID, nil)
}

func (s *serviceImpl) persistRefreshToken(ctx context.Context, adminID int64, token *string) error {
	fields := map[string]any{
		model.FieldRefreshToken: token,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(adminID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to persist refresh token")

		return fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	adminID, err := shared.ParseID(claims.UserID)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	admin, err := s.repo.Get(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	// The presented token must match the one persisted at login; a logout
	// or a newer login invalidates it.
	if admin.ID == 0 || admin.RefreshToken == nil || *admin.RefreshToken != req.RefreshToken {
		return res, failure.Unauthorized("refresh token revoked") //nolint:wrapcheck
	}

	pair, err := s.jwtService.GenerateTokenPair(shared.FormatID(admin.ID), admin.Email, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err = s.persistRefreshToken(ctx, admin.ID, &pair.RefreshToken); err != nil {
		return res, err
	}

	res.AccessToken = pair.AccessToken
	res.RefreshToken = pair.RefreshToken
	res.TokenType = pair.TokenType
	res.ExpiresIn = pair.ExpiresIn

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context, adminID int64) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		return res, failure.NotFound("admin not found") //nolint:wrapcheck
	}

	res.FromModel(admin)

	return res, nil
}
