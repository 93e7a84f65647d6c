package echo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	httpecho "github.com/nucareers/career-portal/internal/interfaces/http/echo"
)

func TestAuthenticatorRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := httpecho.SignAccessToken(testSecret, "admin-1", app.RoleAdmin, time.Minute, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graduates", nil)
	rec := s.serve(withToken(req, token))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticatorRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	claims := httpecho.AccessClaims{
		Role:             app.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin-1"},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graduates", nil)
	rec := s.serve(withToken(req, token))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticatorRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := httpecho.SignAccessToken("another-secret", "admin-1", app.RoleAdmin, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/graduates", nil)
	rec := s.serve(withToken(req, token))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
