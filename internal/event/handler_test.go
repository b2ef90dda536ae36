package event

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fkhayef/wedding-rsvp/internal/config"
)

func fixedClock(day string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02 15:04", day)
		return t
	}
}

func TestHandler_Details(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		now      string
		wantDays *int
	}{
		{"thirty days out", "2026-12-31", "2026-12-01 18:30", intPtr(30)},
		{"wedding day", "2026-12-31", "2026-12-31 09:00", intPtr(0)},
		{"already past", "2026-01-01", "2026-12-31 09:00", intPtr(0)},
		{"no date", "", "2026-12-01 00:00", nil},
		{"free text date", "next spring", "2026-12-01 00:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(config.Wedding{BrideName: "Layla", GroomName: "Omar", Date: tt.date, Venue: "Garden Hall"})
			h.now = fixedClock(tt.now)

			d := h.details()
			if d.BrideName != "Layla" || d.GroomName != "Omar" || d.Venue != "Garden Hall" {
				t.Errorf("unexpected details: %+v", d)
			}
			switch {
			case tt.wantDays == nil && d.DaysUntil != nil:
				t.Errorf("expected no countdown, got %d", *d.DaysUntil)
			case tt.wantDays != nil && d.DaysUntil == nil:
				t.Errorf("expected %d days, got none", *tt.wantDays)
			case tt.wantDays != nil && *d.DaysUntil != *tt.wantDays:
				t.Errorf("expected %d days, got %d", *tt.wantDays, *d.DaysUntil)
			}
		})
	}
}

func intPtr(n int) *int { return &n }

func TestHandler_Get(t *testing.T) {
	h := NewHandler(config.Wedding{BrideName: "Layla", GroomName: "Omar"})

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/event", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Success bool    `json:"success"`
		Data    Details `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Data.BrideName != "Layla" || body.Data.DaysUntil != nil {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
