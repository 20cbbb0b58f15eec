package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/juanfer112/reservaPlaza-back-end/internal/utils"
)

const testSecret = "test-secret"

func runProtected(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, c
}

func TestJWTAuth(t *testing.T) {
	t.Parallel()

	t.Run("valid token passes and fills context", func(t *testing.T) {
		tok, err := utils.NewAccessToken(testSecret, 7, "ENTERPRISE", 15)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		rec, c := runProtected(t, JWTAuth(testSecret), "Bearer "+tok.Token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
		}
		if role, _ := c.Get("role").(string); role != "ENTERPRISE" {
			t.Fatalf("expected role claim in context, got %v", c.Get("role"))
		}
		if c.Get("enterprise_id") == nil {
			t.Fatalf("expected enterprise_id claim in context")
		}
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rec, _ := runProtected(t, JWTAuth(testSecret), "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		rec, _ := runProtected(t, JWTAuth(testSecret), "Bearer not.a.jwt")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", 7, "ENTERPRISE", 15)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		rec, _ := runProtected(t, JWTAuth(testSecret), "Bearer "+tok.Token)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	run := func(role any, allowed ...string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/spacetypes", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		handler := RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("middleware returned error: %v", err)
		}
		return rec
	}

	if rec := run("ADMIN", "ADMIN"); rec.Code != http.StatusOK {
		t.Fatalf("expected admin to pass, got %d", rec.Code)
	}
	if rec := run("ENTERPRISE", "ADMIN"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected enterprise blocked on admin route, got %d", rec.Code)
	}
	if rec := run(nil, "ADMIN", "ENTERPRISE"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected missing role blocked, got %d", rec.Code)
	}
	if rec := run(42, "ADMIN"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected non-string role blocked, got %d", rec.Code)
	}
}
