package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"baxpro/internal/domain/entity"
	"baxpro/internal/domain/service"
	servicemocks "baxpro/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	tokenSvc := servicemocks.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user", "vip", "admin"}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Maybe()
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{"valid token", "Bearer good", http.StatusOK, true},
		{"expired token", "Bearer expired", http.StatusUnauthorized, false},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, false},
		{"missing header", "", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true

				gotID, ok := GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, userID, gotID)

				roles, ok := GetRoles(c)
				require.True(t, ok)
				assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleVIP}, roles)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCalled, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{})

	tests := []struct {
		name       string
		roles      any
		wantStatus int
	}{
		{"has role", entity.Roles{entity.RoleUser, entity.RoleVIP}, http.StatusNoContent},
		{"lacks role", entity.Roles{entity.RoleUser}, http.StatusForbidden},
		{"not authenticated", nil, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			if tt.roles != nil {
				c.Set(contextKeyRoles, tt.roles)
			}

			err := m.RequireRole(entity.RoleVIP)(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
