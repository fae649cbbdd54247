package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"film-catalog/config"
	"film-catalog/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWT_SECRET))
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.GET("/admin", AuthMiddleware(), RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Token abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, jwt.MapClaims{"user_id": 1, "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}), http.StatusUnauthorized},
		{"wrong role", "Bearer " + signed(t, jwt.MapClaims{"user_id": 2, "role": "user", "exp": time.Now().Add(time.Hour).Unix()}), http.StatusForbidden},
		{"admin", "Bearer " + signed(t, jwt.MapClaims{"user_id": 1, "role": "admin", "exp": time.Now().Add(time.Hour).Unix()}), http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestAuthMiddlewareSetsClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	raw, err := users.IssueToken(&users.User{ID: 42, Role: users.RoleUser}, config.JWT_SECRET, time.Now())
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		_, hasEmail := c.Get("email")
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id"), "role": c.GetString("role"), "email": hasEmail})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":42,"role":"user","email":false}`, w.Body.String())
}
