package guest

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fkhayef/wedding-rsvp/pkg/request"
	"github.com/fkhayef/wedding-rsvp/pkg/response"
)

// Handler handles HTTP requests for the admin guest list
type Handler struct {
	service   *Service
	maxUpload int64
	log       *zap.Logger
}

// NewHandler creates a new guest handler. maxUpload caps the import file size in bytes.
func NewHandler(service *Service, maxUpload int64, log *zap.Logger) *Handler {
	return &Handler{service: service, maxUpload: maxUpload, log: log}
}

// Routes returns the router for guest endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Post("/import", h.Import)
	r.Delete("/bulk-delete", h.BulkDelete)
	r.Patch("/bulk-update", h.BulkUpdate)

	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.UpdateStatus)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/toggle-invited", h.ToggleInvited)
	r.Post("/{id}/invite-link", h.InviteLink)

	return r
}

// fail maps service errors to responses. Store failures are logged and never echoed.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	writeError(w, r, h.log, err, action)
}

func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, action string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.BadRequest(w, err.Error())
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, err.Error())
	default:
		log.Error("failed to "+action,
			zap.Error(err),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
		response.InternalError(w, "Failed to "+action)
	}
}

// List handles GET /guests
// @Summary      List guests
// @Description  Get the guest list, newest first, optionally filtered
// @Tags         guests
// @Produce      json
// @Param        side query string false "bride or groom"
// @Param        rsvp_status query string false "pending, attending or declined"
// @Param        is_invited query bool false "Invitation delivered"
// @Param        q query string false "Name contains"
// @Success      200 {object} response.APIResponse{data=[]GuestResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /guests [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := ListFilter{
		Side:       Side(query.Get("side")),
		RSVPStatus: RSVPStatus(query.Get("rsvp_status")),
		Search:     strings.TrimSpace(query.Get("q")),
	}
	if raw := query.Get("is_invited"); raw != "" {
		invited, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "is_invited must be true or false")
			return
		}
		filter.IsInvited = &invited
	}

	guests, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err, "list guests")
		return
	}

	response.JSONWithMeta(w, http.StatusOK, toResponses(guests), &response.Meta{Total: len(guests)})
}

// Create handles POST /guests
// @Summary      Add a guest
// @Description  Add a single guest; an invite id is generated when omitted
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        request body CreateGuestRequest true "Guest"
// @Success      201 {object} response.APIResponse{data=GuestResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /guests [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	g, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err, "create guest")
		return
	}

	response.JSON(w, http.StatusCreated, g.ToResponse())
}

// GetByID handles GET /guests/{id}
// @Summary      Get guest by ID
// @Tags         guests
// @Produce      json
// @Param        id path string true "Guest ID"
// @Success      200 {object} response.APIResponse{data=GuestResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /guests/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "get guest")
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// Update handles PUT /guests/{id}
// @Summary      Edit a guest
// @Description  Only the fields present in the body are changed
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        id path string true "Guest ID"
// @Param        request body UpdateGuestRequest true "Fields to change"
// @Success      200 {object} response.APIResponse{data=GuestResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /guests/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateGuestRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	g, err := h.service.UpdateByID(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.fail(w, r, err, "update guest")
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// UpdateStatus handles PATCH /guests/{id}
// @Summary      Set RSVP status
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        id path string true "Guest ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200 {object} response.APIResponse{data=GuestResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /guests/{id} [patch]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	g, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.RSVPStatus)
	if err != nil {
		h.fail(w, r, err, "update guest status")
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// Delete handles DELETE /guests/{id}
// @Summary      Delete a guest
// @Tags         guests
// @Produce      json
// @Param        id path string true "Guest ID"
// @Success      200 {object} response.APIResponse{data=response.MessageBody}
// @Failure      404 {object} response.APIResponse
// @Router       /guests/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, err, "delete guest")
		return
	}

	response.Message(w, http.StatusOK, "Guest deleted")
}

// BulkDelete handles DELETE /guests/bulk-delete
// @Summary      Delete many guests
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        request body BulkDeleteRequest true "Guest IDs"
// @Success      200 {object} response.APIResponse{data=BulkResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /guests/bulk-delete [delete]
func (h *Handler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	n, err := h.service.BulkDelete(r.Context(), req.IDs)
	if err != nil {
		h.fail(w, r, err, "delete guests")
		return
	}

	response.JSON(w, http.StatusOK, BulkResponse{
		Message: fmt.Sprintf("%d guests deleted", n),
		Count:   n,
	})
}

// BulkUpdate handles PATCH /guests/bulk-update
// @Summary      Update many guests
// @Description  Apply the same side, status or invited flag to every listed guest
// @Tags         guests
// @Accept       json
// @Produce      json
// @Param        request body BulkUpdateRequest true "Guest IDs and fields"
// @Success      200 {object} response.APIResponse{data=BulkResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /guests/bulk-update [patch]
func (h *Handler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
	var req BulkUpdateRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	n, err := h.service.BulkUpdate(r.Context(), &req)
	if err != nil {
		h.fail(w, r, err, "update guests")
		return
	}

	response.JSON(w, http.StatusOK, BulkResponse{
		Message: fmt.Sprintf("%d guests updated", n),
		Count:   n,
	})
}

func isCSVUpload(header *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		return true
	}
	ct := strings.ToLower(header.Header.Get("Content-Type"))
	return strings.HasPrefix(ct, "text/csv")
}

// Import handles POST /guests/import
// @Summary      Import guests from CSV
// @Description  Header row needs name and side; tags and rsvp_status are optional. Invalid rows are skipped.
// @Tags         guests
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "CSV file"
// @Success      201 {object} response.APIResponse{data=ImportResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      413 {object} response.APIResponse
// @Router       /guests/import [post]
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.TooLarge(w, "File is too large")
			return
		}
		response.BadRequest(w, "Expected a multipart form with a file field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required")
		return
	}
	defer file.Close()

	if !isCSVUpload(header) {
		response.BadRequest(w, "File must be a CSV")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read file")
		return
	}

	guests, skipped, err := h.service.Import(r.Context(), string(content))
	if err != nil {
		h.fail(w, r, err, "import guests")
		return
	}

	h.log.Info("guests imported",
		zap.Int("imported", len(guests)),
		zap.Int("skipped", skipped),
		zap.String("file", header.Filename),
	)

	response.JSON(w, http.StatusCreated, ImportResponse{
		Message: fmt.Sprintf("Successfully imported %d guests", len(guests)),
		Guests:  toResponses(guests),
		Skipped: skipped,
	})
}

// ToggleInvited handles POST /guests/{id}/toggle-invited
// @Summary      Toggle invited flag
// @Tags         guests
// @Produce      json
// @Param        id path string true "Guest ID"
// @Success      200 {object} response.APIResponse{data=GuestResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /guests/{id}/toggle-invited [post]
func (h *Handler) ToggleInvited(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.ToggleInvited(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "toggle invited")
		return
	}

	response.JSON(w, http.StatusOK, g.ToResponse())
}

// InviteLink handles POST /guests/{id}/invite-link
// @Summary      Get invitation link
// @Description  Returns the guest's personal link and marks the guest as invited
// @Tags         guests
// @Produce      json
// @Param        id path string true "Guest ID"
// @Success      200 {object} response.APIResponse{data=InviteLinkResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /guests/{id}/invite-link [post]
func (h *Handler) InviteLink(w http.ResponseWriter, r *http.Request) {
	url, g, err := h.service.InviteLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "create invite link")
		return
	}

	response.JSON(w, http.StatusOK, InviteLinkResponse{URL: url, Guest: g.ToResponse()})
}

// Stats handles GET /stats
// @Summary      Guest list statistics
// @Tags         stats
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Stats}
// @Router       /stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err, "compute stats")
		return
	}

	response.JSON(w, http.StatusOK, stats)
}
