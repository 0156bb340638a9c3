package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/fitplan/backend/internal/mocks"
	"github.com/pageza/fitplan/backend/internal/types"
)

func newAuthRouter(validator TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/plans", AdminAuth(validator), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("admin_subject")})
	})
	return router
}

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(*mocks.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			setup:      func(*mocks.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			setup:      func(*mocks.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mocks.MockTokenService) {
				m.On("ValidateToken", "bad").Return(nil, errors.New("invalid token"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "not an admin",
			header: "Bearer member",
			setup: func(m *mocks.MockTokenService) {
				m.On("ValidateToken", "member").Return(&types.TokenClaims{Role: "member"}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "admin",
			header: "Bearer good",
			setup: func(m *mocks.MockTokenService) {
				m.On("ValidateToken", "good").Return(&types.TokenClaims{
					RegisteredClaims: jwt.RegisteredClaims{Subject: "ops"},
					Role:             types.RoleAdmin,
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(mocks.MockTokenService)
			tt.setup(validator)

			req := httptest.NewRequest(http.MethodPost, "/plans", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			newAuthRouter(validator).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"subject":"ops"}`, rr.Body.String())
			} else {
				assert.Contains(t, rr.Body.String(), `"error"`)
			}
			validator.AssertExpectations(t)
		})
	}
}
