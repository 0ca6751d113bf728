package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	domain "file-vault-api/internal/domain/user"
	jwtSvc "file-vault-api/internal/infrastructure/jwt"
	"file-vault-api/internal/interface/api/rest/middleware"
)

const testJWTSecret = "test-secret"

func setupProfileRouter(t *testing.T, us ports.UserService) (*gin.Engine, *jwtSvc.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtSvc.New(testJWTSecret)
	r := gin.New()
	uc := &UserController{
		userService: us,
		logger:      zap.NewNop(),
	}
	r.GET(RouteProfile, middleware.AuthMiddleware(j), uc.GetProfileHandler)

	return r, j
}

func bearer(t *testing.T, j *jwtSvc.Service, userUUID uuid.UUID, expiresIn time.Duration) string {
	t.Helper()
	tok, err := j.GenerateJWT(userUUID.String(), "alice", expiresIn)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestUserController_GetProfileHandler(t *testing.T) {
	knownUUID := uuid.New()

	us := &FakeUserService{
		FindUserByUUIDFunc: func(ctx context.Context, u domain.UUID) (*domain.User, error) {
			if u == knownUUID {
				return &domain.User{UUID: knownUUID, Username: "alice"}, nil
			}
			return nil, nil
		},
	}

	tests := []struct {
		name       string
		authHeader func(t *testing.T, j *jwtSvc.Service) string
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing header",
			authHeader: func(t *testing.T, j *jwtSvc.Service) string { return "" },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name:       "401 not a bearer token",
			authHeader: func(t *testing.T, j *jwtSvc.Service) string { return "Basic abcdef" },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token format",
		},
		{
			name:       "403 garbage token",
			authHeader: func(t *testing.T, j *jwtSvc.Service) string { return "Bearer not.a.jwt" },
			wantStatus: http.StatusForbidden,
			wantErr:    "invalid or expired token",
		},
		{
			name: "403 wrong signing key",
			authHeader: func(t *testing.T, j *jwtSvc.Service) string {
				other := jwtSvc.New("another-secret")
				return bearer(t, other, knownUUID, time.Minute)
			},
			wantStatus: http.StatusForbidden,
			wantErr:    "invalid or expired token",
		},
		{
			name: "403 expired token",
			authHeader: func(t *testing.T, j *jwtSvc.Service) string {
				return bearer(t, j, knownUUID, -time.Minute)
			},
			wantStatus: http.StatusForbidden,
			wantErr:    "invalid or expired token",
		},
		{
			name: "404 account deleted after token was issued",
			authHeader: func(t *testing.T, j *jwtSvc.Service) string {
				return bearer(t, j, uuid.New(), time.Minute)
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name: "200 success",
			authHeader: func(t *testing.T, j *jwtSvc.Service) string {
				return bearer(t, j, knownUUID, time.Minute)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j := setupProfileRouter(t, us)

			headers := map[string]string{}
			if h := tt.authHeader(t, j); h != "" {
				headers["Authorization"] = h
			}

			rr := doReq(t, r, http.MethodGet, RouteProfile, nil, headers)
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}
			assert.Equal(t, "alice", resp["username"])
			assert.Equal(t, knownUUID.String(), resp["uuid"])
			assert.NotContains(t, rr.Body.String(), "password")
		})
	}
}

func TestUserController_GetProfileHandler_LookupError(t *testing.T) {
	us := &FakeUserService{
		FindUserByUUIDFunc: func(ctx context.Context, u domain.UUID) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}
	r, j := setupProfileRouter(t, us)

	rr := doReq(t, r, http.MethodGet, RouteProfile, nil, map[string]string{
		"Authorization": bearer(t, j, uuid.New(), time.Minute),
	})
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
