package echo_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	app "github.com/nucareers/career-portal/internal/application/graduate"
)

func TestListGraduates(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.list.output = app.ListGraduatesOutput{
		Items:      []app.GraduateOutput{{ID: "g-1", NuID: "k20-0001", FullName: "Alice"}},
		Total:      1,
		Page:       2,
		Limit:      5,
		TotalPages: 1,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/graduates?page=2&limit=5&search=ali", nil)
	rec := s.serve(withToken(req, tokenFor(t, "grad-1", app.RoleGraduate)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if s.list.got != (app.ListGraduatesInput{Page: 2, Limit: 5, Search: "ali"}) {
		t.Fatalf("unexpected list input: %#v", s.list.got)
	}
	data, ok := decodeBody(t, rec)["data"].(map[string]any)
	if !ok || data["total"] != float64(1) {
		t.Fatalf("unexpected data: %#v", data)
	}
}

func TestListGraduatesRejectsBadQuery(t *testing.T) {
	t.Parallel()

	for _, query := range []string{"limit=500", "limit=101", "page=abc", "page=1000001", "page=9223372036854775807"} {
		s := newTestServer()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/graduates?"+query, nil)
		rec := s.serve(withToken(req, tokenFor(t, "grad-1", app.RoleGraduate)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", query, rec.Code)
		}
	}
}

func TestGetGraduateErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err        error
		wantStatus int
	}{
		{err: nil, wantStatus: http.StatusOK},
		{err: app.ErrGraduateNotFound, wantStatus: http.StatusNotFound},
		{err: app.ErrInvalidGraduateID, wantStatus: http.StatusBadRequest},
		{err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s := newTestServer()
		s.get.err = tt.err
		s.get.output = app.GraduateOutput{ID: "g-1"}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/graduates/g-1", nil)
		rec := s.serve(withToken(req, tokenFor(t, "grad-1", app.RoleGraduate)))

		if rec.Code != tt.wantStatus {
			t.Fatalf("err %v: expected %d, got %d", tt.err, tt.wantStatus, rec.Code)
		}
	}
}

func TestUpdateGraduatePassesPatchAndCaller(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.update.output = app.GraduateOutput{ID: "g-1", Tagline: "Backend engineer"}

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/graduates/g-1", strings.NewReader(`{"tagline":"Backend engineer","cgpa":3.4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := s.serve(withToken(req, tokenFor(t, "g-1", app.RoleGraduate)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := s.update.got
	if got.ID != "g-1" || got.Caller.ID != "g-1" || got.Caller.Role != app.RoleGraduate {
		t.Fatalf("unexpected update input: %#v", got)
	}
	if got.Patch.Tagline == nil || *got.Patch.Tagline != "Backend engineer" {
		t.Fatalf("tagline not forwarded: %#v", got.Patch)
	}
	if got.Patch.CGPA == nil || *got.Patch.CGPA != 3.4 {
		t.Fatalf("cgpa not forwarded: %#v", got.Patch)
	}
	if got.Patch.FullName != nil {
		t.Fatalf("absent fields must stay nil")
	}
}

func TestUpdateGraduateValidation(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"immutable nuId":  `{"nuId":"k99-0001"}`,
		"bad email":       `{"personalEmail":"not-an-email"}`,
		"cgpa over range": `{"cgpa":4.5}`,
		"malformed json":  `{"tagline":`,
	}

	for name, body := range bodies {
		s := newTestServer()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/graduates/g-1", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := s.serve(withToken(req, tokenFor(t, "admin-1", app.RoleAdmin)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
		if s.update.called {
			t.Fatalf("%s: use case must not run", name)
		}
	}
}

func TestUpdateGraduateForbidden(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.update.err = app.ErrForbidden

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/graduates/g-2", strings.NewReader(`{"tagline":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := s.serve(withToken(req, tokenFor(t, "g-1", app.RoleGraduate)))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeleteGraduateRequiresAdmin(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/graduates/g-1", nil)
	rec := s.serve(withToken(req, tokenFor(t, "g-1", app.RoleGraduate)))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if s.remove.called {
		t.Fatalf("delete must not run for a graduate")
	}

	s = newTestServer()
	s.remove.err = app.ErrGraduateNotFound
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/graduates/g-1", nil)
	rec = s.serve(withToken(req, tokenFor(t, "admin-1", app.RoleAdmin)))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
