package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hellobike_login/pkg/util/jwt"
)

func newProtectedEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwt.Init("middleware-secret", 15, 168)
	engine := gin.New()
	engine.GET("/me", JWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextMobileKey))
	})
	return engine
}

func doGet(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsAccessToken(t *testing.T) {
	engine := newProtectedEngine()
	token, err := jwt.GenerateAccessToken("19100000001")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	w := doGet(engine, "Bearer "+token)
	if w.Code != http.StatusOK || w.Body.String() != "19100000001" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
}

func TestJWTAuthRejects(t *testing.T) {
	engine := newProtectedEngine()
	refresh, _, err := jwt.GenerateRefreshToken("19100000001")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Token abc",
		"garbage token":  "Bearer not-a-jwt",
		"refresh token":  "Bearer " + refresh,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			if w := doGet(engine, header); w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
		})
	}
}
