package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("test-secret", time.Hour)
}

func TestIssueAndParse(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.Issue("USR001", "Dr. Rajesh Sharma", RoleDoctor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "USR001" {
		t.Errorf("expected subject USR001, got %s", claims.Subject)
	}
	if claims.Name != "Dr. Rajesh Sharma" {
		t.Errorf("unexpected name: %s", claims.Name)
	}
	if claims.Role != RoleDoctor {
		t.Errorf("expected doctor role, got %s", claims.Role)
	}
}

func TestIssue_RejectsUnknownRole(t *testing.T) {
	if _, err := testIssuer().Issue("USR001", "X", "superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	token, err := testIssuer().Issue("USR001", "X", RolePatient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := NewTokenIssuer("other-secret", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected error for token signed with different secret")
	}
}

func TestParse_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, err := issuer.Issue("USR001", "X", RolePatient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := issuer.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func invokeWithRole(t *testing.T, mw echo.MiddlewareFunc, token string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, RoleFromContext(c.Request().Context()))
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestMiddleware_SetsIdentity(t *testing.T) {
	issuer := testIssuer()
	token, _ := issuer.Issue("USR002", "Priya Patel", RolePatient)

	rec := invokeWithRole(t, Middleware(issuer), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != RolePatient {
		t.Errorf("expected patient role on context, got %s", rec.Body.String())
	}
}

func TestMiddleware_RejectsMissingToken(t *testing.T) {
	rec := invokeWithRole(t, Middleware(testIssuer()), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestDevMiddleware_DefaultsToAdmin(t *testing.T) {
	rec := invokeWithRole(t, DevMiddleware(testIssuer()), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != RoleAdmin {
		t.Errorf("expected admin fallback, got %s", rec.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(role string, required ...string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetRequest(c.Request().WithContext(withIdentity(c.Request().Context(), "u", "n", role)))

		h := RequireRole(required...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := h(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	if code := run(RoleDoctor, RoleDoctor); code != http.StatusOK {
		t.Errorf("doctor on doctor route: expected 200, got %d", code)
	}
	if code := run(RolePatient, RoleDoctor); code != http.StatusForbidden {
		t.Errorf("patient on doctor route: expected 403, got %d", code)
	}
	if code := run(RoleAdmin, RoleDoctor); code != http.StatusOK {
		t.Errorf("admin passes every gate: expected 200, got %d", code)
	}
}
