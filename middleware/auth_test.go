package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, authHeader string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/surveys/public/tok/responses", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c, w
}

func TestOptionalAuthWithoutHeader(t *testing.T) {
	c, _ := testContext(t, "")

	OptionalAuth()(c)

	if c.IsAborted() {
		t.Error("anonymous requests must pass through")
	}
	if _, ok := c.Get(CtxUser); ok {
		t.Error("no user must be set without credentials")
	}
}

func TestOptionalAuthWithInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	c, _ := testContext(t, "Bearer not-a-token")

	OptionalAuth()(c)

	if c.IsAborted() {
		t.Error("a bad token must not reject a public request")
	}
	if _, ok := c.Get(CtxUser); ok {
		t.Error("no user must be set for an invalid token")
	}
}

func TestAuthJWTWithoutHeader(t *testing.T) {
	c, w := testContext(t, "")

	AuthJWT()(c)

	if !c.IsAborted() {
		t.Fatal("protected routes must reject anonymous requests")
	}
	if w.Code != 401 {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
