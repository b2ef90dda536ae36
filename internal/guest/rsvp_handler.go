package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fkhayef/wedding-rsvp/pkg/request"
	"github.com/fkhayef/wedding-rsvp/pkg/response"
)

// RSVPHandler serves the public invitation endpoints
type RSVPHandler struct {
	service *Service
	limit   func(http.Handler) http.Handler
	log     *zap.Logger
}

// NewRSVPHandler creates the public RSVP handler. limit, when set, wraps every route.
func NewRSVPHandler(service *Service, limit func(http.Handler) http.Handler, log *zap.Logger) *RSVPHandler {
	return &RSVPHandler{service: service, limit: limit, log: log}
}

// Routes returns the router for RSVP endpoints
func (h *RSVPHandler) Routes() chi.Router {
	r := chi.NewRouter()
	if h.limit != nil {
		r.Use(h.limit)
	}

	r.Post("/anonymous", h.Anonymous)
	r.Get("/{uniqueInviteId}", h.Get)
	r.Patch("/{uniqueInviteId}", h.Respond)

	return r
}

// Get handles GET /rsvp/{uniqueInviteId}
// @Summary      Open an invitation
// @Tags         rsvp
// @Produce      json
// @Param        uniqueInviteId path string true "Invite token"
// @Success      200 {object} response.APIResponse{data=InvitationResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /rsvp/{uniqueInviteId} [get]
func (h *RSVPHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.GetByInviteToken(r.Context(), chi.URLParam(r, "uniqueInviteId"))
	if err != nil {
		writeError(w, r, h.log, err, "load invitation")
		return
	}

	response.JSON(w, http.StatusOK, g.ToInvitation())
}

// Respond handles PATCH /rsvp/{uniqueInviteId}
// @Summary      Answer an invitation
// @Description  Only attending or declined are accepted
// @Tags         rsvp
// @Accept       json
// @Produce      json
// @Param        uniqueInviteId path string true "Invite token"
// @Param        request body UpdateStatusRequest true "attending or declined"
// @Success      200 {object} response.APIResponse{data=GuestResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Failure      429 {object} response.APIResponse
// @Router       /rsvp/{uniqueInviteId} [patch]
func (h *RSVPHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	g, err := h.service.UpdateByInviteToken(r.Context(), chi.URLParam(r, "uniqueInviteId"), req.RSVPStatus)
	if err != nil {
		writeError(w, r, h.log, err, "save RSVP")
		return
	}

	h.log.Info("rsvp received",
		zap.String("guest_id", g.ID),
		zap.String("rsvp_status", string(g.RSVPStatus)),
	)
	response.JSON(w, http.StatusOK, g.ToResponse())
}

// Anonymous handles POST /rsvp/anonymous
// @Summary      RSVP without an invitation link
// @Description  Creates an attending guest tagged anonymous
// @Tags         rsvp
// @Accept       json
// @Produce      json
// @Param        request body AnonymousRSVPRequest true "Name and side"
// @Success      201 {object} response.APIResponse{data=AnonymousRSVPResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      429 {object} response.APIResponse
// @Router       /rsvp/anonymous [post]
func (h *RSVPHandler) Anonymous(w http.ResponseWriter, r *http.Request) {
	var req AnonymousRSVPRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	g, err := h.service.CreateAnonymous(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "save RSVP")
		return
	}

	h.log.Info("anonymous rsvp received", zap.String("guest_id", g.ID), zap.String("side", string(g.Side)))
	response.JSON(w, http.StatusCreated, AnonymousRSVPResponse{
		Message: "Thank you, your RSVP has been received",
		Guest:   g.ToResponse(),
	})
}
