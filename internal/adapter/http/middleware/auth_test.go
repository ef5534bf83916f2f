package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, sub, role string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	s, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newRouter(roles ...string) *gin.Engine {
	r := gin.New()
	chain := []gin.HandlerFunc{Authenticate(testSecret)}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, PrincipalID(c))
	})
	r.GET("/secure", chain...)
	return r
}

func do(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	future := time.Now().Add(time.Hour)

	t.Run("missing header", func(t *testing.T) {
		if w := do(newRouter(), ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		if w := do(newRouter(), "Basic abc"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte("other"), "user-1", "manager", future)
		if w := do(newRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "user-1", "manager", time.Now().Add(-time.Hour))
		if w := do(newRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("other hmac algorithm rejected", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), "user-1", "manager", future)
		if w := do(newRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "", "manager", future)
		if w := do(newRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes principal", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "user-1", "technician", future)
		w := do(newRouter(), "Bearer "+tok)
		if w.Code != http.StatusOK || w.Body.String() != "user-1" {
			t.Fatalf("expected 200 user-1, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	future := time.Now().Add(time.Hour)

	t.Run("allowed role", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "user-1", "Manager", future)
		if w := do(newRouter("manager", "admin"), "Bearer "+tok); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("forbidden role", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), "user-1", "technician", future)
		if w := do(newRouter("manager"), "Bearer "+tok); w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("no principal", func(t *testing.T) {
		r := gin.New()
		r.GET("/secure", RequireRole("manager"), func(c *gin.Context) { c.Status(http.StatusOK) })
		if w := do(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
