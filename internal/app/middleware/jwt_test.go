package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/endri-fradomos/local-api/internal/domain/services"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func authTestRouter(t *testing.T) (*gin.Engine, services.InterfaceJWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecretKey: "test-secret", JWTExpiryHour: 1}
	InitAuthMiddleware(cfg)

	r := gin.New()
	r.GET("/protected", Authentication(), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})

	return r, services.NewJWTService(cfg)
}

func TestAuthenticationRejectsMissingHeader(t *testing.T) {
	r, _ := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticationRejectsGarbageToken(t *testing.T) {
	r, _ := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthenticationAcceptsValidToken(t *testing.T) {
	r, jwtSvc := authTestRouter(t)

	token, err := jwtSvc.GenerateToken(7, "endri", "user")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
