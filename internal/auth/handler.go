package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/wedding-rsvp/pkg/middleware"
	"github.com/fkhayef/wedding-rsvp/pkg/request"
	"github.com/fkhayef/wedding-rsvp/pkg/response"
)

// LoginRequest represents the admin login body
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the current admin session
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	ExpiresAt     string `json:"expires_at,omitempty"`
}

// Handler handles HTTP requests for the admin session
type Handler struct {
	sessions     *Sessions
	secureCookie bool
	loginLimit   func(http.Handler) http.Handler
	log          *zap.Logger
}

// NewHandler creates a new auth handler. loginLimit throttles login attempts.
func NewHandler(sessions *Sessions, secureCookie bool, loginLimit func(http.Handler) http.Handler, log *zap.Logger) *Handler {
	return &Handler{
		sessions:     sessions,
		secureCookie: secureCookie,
		loginLimit:   loginLimit,
		log:          log,
	}
}

// Routes returns the router for auth endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	login := http.Handler(http.HandlerFunc(h.Login))
	if h.loginLimit != nil {
		login = h.loginLimit(login)
	}
	r.Method(http.MethodPost, "/login", login)
	r.Post("/logout", h.Logout)
	r.With(middleware.RequireAdmin(h.sessions)).Get("/session", h.Session)

	return r
}

// Login handles POST /auth/login
// @Summary      Admin login
// @Description  Exchange the admin password for a session cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Admin password"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Failure      429 {object} response.APIResponse
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	if err := h.sessions.CheckPassword(req.Password); err != nil {
		h.log.Warn("admin login rejected", zap.String("ip", r.RemoteAddr))
		response.Unauthorized(w, "Invalid password")
		return
	}

	token, expiresAt, err := h.sessions.Issue(time.Now())
	if err != nil {
		h.log.Error("failed to issue admin session", zap.Error(err))
		response.InternalError(w, "Failed to log in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.JSON(w, http.StatusOK, SessionResponse{
		Authenticated: true,
		ExpiresAt:     expiresAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
}

// Logout handles POST /auth/logout
// @Summary      Admin logout
// @Description  Clear the admin session cookie
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.APIResponse{data=response.MessageBody}
// @Router       /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	response.Message(w, http.StatusOK, "Logged out")
}

// Session handles GET /auth/session
// @Summary      Current session
// @Description  Report whether the caller holds a valid admin session
// @Tags         auth
// @Produce      json
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /auth/session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetAdminSubject(r.Context()); !ok {
		response.Unauthorized(w, ErrInvalidSession.Error())
		return
	}
	response.JSON(w, http.StatusOK, SessionResponse{Authenticated: true})
}
