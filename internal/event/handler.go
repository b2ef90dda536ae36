package event

import (
	"net/http"
	"time"

	"github.com/fkhayef/wedding-rsvp/internal/config"
	"github.com/fkhayef/wedding-rsvp/pkg/response"
)

// Details is the public description of the wedding
type Details struct {
	BrideName string `json:"bride_name"`
	GroomName string `json:"groom_name"`
	Date      string `json:"date,omitempty"`
	Venue     string `json:"venue,omitempty"`
	// DaysUntil is absent when the date is unset or not in YYYY-MM-DD form
	DaysUntil *int `json:"days_until,omitempty"`
}

// Handler serves the event details
type Handler struct {
	wedding config.Wedding
	now     func() time.Time
}

// NewHandler creates a new event handler
func NewHandler(wedding config.Wedding) *Handler {
	return &Handler{wedding: wedding, now: time.Now}
}

func (h *Handler) details() Details {
	d := Details{
		BrideName: h.wedding.BrideName,
		GroomName: h.wedding.GroomName,
		Date:      h.wedding.Date,
		Venue:     h.wedding.Venue,
	}

	day, err := time.Parse("2006-01-02", h.wedding.Date)
	if err != nil {
		return d
	}
	now := h.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(today).Hours() / 24)
	if days < 0 {
		days = 0
	}
	d.DaysUntil = &days
	return d
}

// Get handles GET /event
// @Summary      Wedding details
// @Tags         event
// @Produce      json
// @Success      200 {object} response.APIResponse{data=Details}
// @Router       /event [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.details())
}
