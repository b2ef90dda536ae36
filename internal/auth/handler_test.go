package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fkhayef/wedding-rsvp/pkg/middleware"
)

func newTestHandler() http.Handler {
	return NewHandler(NewSessions(testSecret, "letmein", time.Hour), true, nil, zap.NewNop()).Routes()
}

func postLogin(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestHandler_Login(t *testing.T) {
	h := newTestHandler()

	rec := postLogin(h, `{"password":"letmein"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	c := sessionCookie(rec)
	if c == nil || c.Value == "" {
		t.Fatal("expected a session cookie")
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie attributes not set: %+v", c)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":true`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestHandler_LoginRejected(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		body string
		want int
	}{
		{"wrong password", `{"password":"nope"}`, http.StatusUnauthorized},
		{"missing password", `{}`, http.StatusBadRequest},
		{"malformed body", `password=letmein`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postLogin(h, tt.body)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
			if sessionCookie(rec) != nil {
				t.Error("rejected login must not set a cookie")
			}
		})
	}
}

func TestHandler_SessionAndLogout(t *testing.T) {
	h := newTestHandler()
	cookie := sessionCookie(postLogin(h, `{"password":"letmein"}`))

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with cookie, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cleared := sessionCookie(rec)
	if cleared == nil || cleared.MaxAge >= 0 || cleared.Value != "" {
		t.Errorf("expected the cookie to be cleared, got %+v", cleared)
	}
}
