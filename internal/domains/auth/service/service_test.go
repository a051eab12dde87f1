package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atithi/config"
	"atithi/infras/jwt"
	jwtMocks "atithi/infras/jwt/mocks"
	"atithi/infras/otel/mocks"
	authMocks "atithi/internal/domains/auth/mocks"
	"atithi/internal/domains/auth/model"
	"atithi/internal/domains/auth/model/dto"
	"atithi/internal/domains/auth/service"
	"atithi/shared/failure"
	"atithi/shared/idgen"
	"atithi/shared/password"
)

func newAuthService(ctrl *gomock.Controller) (service.Auth, *authMocks.MockAdmin, *jwtMocks.MockJWT) {
	mockRepo := authMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockRepo, &config.Config{}, idgen.New(), mocks.NewOtel(), mockJWT)

	return svc, mockRepo, mockJWT
}

func hashedPassword(t *testing.T, plain string) string {
	t.Helper()

	hashed, err := password.Hash(plain)
	assert.NoError(t, err)

	return hashed
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newAuthService(ctrl)

	req := dto.RegisterRequest{
		Name:     "Front Desk",
		Email:    "admin@atithi.in",
		Password: "superSecret1",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "existence check fails",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockJWT := newAuthService(ctrl)

	admin := model.Admin{
		ID:       1,
		Name:     "Front Desk",
		Email:    "admin@atithi.in",
		Password: hashedPassword(t, "superSecret1"),
	}

	pair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: admin.Email, Password: "superSecret1"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("1", admin.Email, gomock.Any()).
					Return(pair, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@atithi.in", Password: "superSecret1"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Admin{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: admin.Email, Password: "wrong"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)
			},
			wantErr:  true,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "token generation fails",
			req:  dto.LoginRequest{Email: admin.Email, Password: "superSecret1"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("signing error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, pair.AccessToken, result.AccessToken)
			assert.Equal(t, pair.RefreshToken, result.RefreshToken)
			assert.Equal(t, "1", result.Admin.ID)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockJWT := newAuthService(ctrl)

	stored := "refresh-token"
	admin := model.Admin{
		ID:           1,
		Email:        "admin@atithi.in",
		RefreshToken: &stored,
	}

	claims := &jwt.Claims{UserID: "1", Email: admin.Email}

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: stored},
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken(stored, jwt.RefreshToken).
					Return(claims, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(admin, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("1", admin.Email, gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "invalid token",
			req:  dto.RefreshTokenRequest{RefreshToken: "garbage"},
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken("garbage", jwt.RefreshToken).
					Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
		{
			name: "token revoked by logout",
			req:  dto.RefreshTokenRequest{RefreshToken: stored},
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken(stored, jwt.RefreshToken).
					Return(claims, nil)

				loggedOut := admin
				loggedOut.RefreshToken = nil

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(loggedOut, nil)
			},
			wantErr: true,
		},
		{
			name: "token superseded by newer login",
			req:  dto.RefreshTokenRequest{RefreshToken: stored},
			setupMock: func() {
				mockJWT.EXPECT().
					ValidateToken(stored, jwt.RefreshToken).
					Return(claims, nil)

				newer := "newer-refresh-token"
				rotated := admin
				rotated.RefreshToken = &newer

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(rotated, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "new-access", result.AccessToken)
			assert.Equal(t, "new-refresh", result.RefreshToken)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newAuthService(ctrl)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			token, ok := fields[model.FieldRefreshToken]
			assert.True(t, ok)
			assert.Nil(t, token)

			return nil
		})

	assert.NoError(t, svc.Logout(context.Background(), 1))
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newAuthService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "admin found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Admin{ID: 1, Name: "Front Desk", Email: "admin@atithi.in"}, nil)
			},
		},
		{
			name: "admin missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Admin{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Me(context.Background(), 1)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "1", result.ID)
			assert.Equal(t, "admin@atithi.in", result.Email)
		})
	}
}
