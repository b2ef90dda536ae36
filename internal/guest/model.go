package guest

import (
	"strings"
	"time"
)

// Side is the half of the couple a guest belongs to
type Side string

const (
	SideBride Side = "bride"
	SideGroom Side = "groom"
)

// RSVPStatus represents a guest's attendance response
type RSVPStatus string

const (
	StatusPending   RSVPStatus = "pending"
	StatusAttending RSVPStatus = "attending"
	StatusDeclined  RSVPStatus = "declined"
)

// AnonymousTag marks guests who registered themselves without a personal invitation
const AnonymousTag = "anonymous"

// Guest represents a single invitee
type Guest struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Side           Side       `json:"side"`
	Tags           []string   `json:"tags"`
	UniqueInviteID string     `json:"unique_invite_id"`
	RSVPStatus     RSVPStatus `json:"rsvp_status"`
	IsInvited      bool       `json:"is_invited"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasTag reports whether the guest carries the given tag
func (g *Guest) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsValidSide reports whether value names a side, ignoring case
func IsValidSide(value string) bool {
	switch Side(strings.ToLower(value)) {
	case SideBride, SideGroom:
		return true
	}
	return false
}

// IsValidStatus reports whether value is one of the three status literals
func IsValidStatus(value string) bool {
	switch RSVPStatus(value) {
	case StatusPending, StatusAttending, StatusDeclined:
		return true
	}
	return false
}

// NormalizeTags trims every tag and drops empties and repeats, keeping first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// GuestPatch is a sparse update: nil fields are left untouched
type GuestPatch struct {
	Name       *string
	Side       *Side
	Tags       []string
	SetTags    bool
	RSVPStatus *RSVPStatus
	IsInvited  *bool
}

// IsEmpty reports whether the patch changes nothing
func (p *GuestPatch) IsEmpty() bool {
	return p.Name == nil && p.Side == nil && !p.SetTags && p.RSVPStatus == nil && p.IsInvited == nil
}

// Validate checks every present field against the record rules
func (p *GuestPatch) Validate() error {
	if p.IsEmpty() {
		return invalid("nothing to update")
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return invalid("name cannot be empty")
	}
	if p.Side != nil && !IsValidSide(string(*p.Side)) {
		return invalid("side must be bride or groom")
	}
	if p.RSVPStatus != nil && !IsValidStatus(string(*p.RSVPStatus)) {
		return invalid("rsvp_status must be pending, attending or declined")
	}
	return nil
}

// ListFilter narrows a guest listing. Zero values match everything.
type ListFilter struct {
	Side       Side
	RSVPStatus RSVPStatus
	IsInvited  *bool
	Search     string
}

// Matches applies the filter to a single guest
func (f ListFilter) Matches(g *Guest) bool {
	if f.Side != "" && g.Side != f.Side {
		return false
	}
	if f.RSVPStatus != "" && g.RSVPStatus != f.RSVPStatus {
		return false
	}
	if f.IsInvited != nil && g.IsInvited != *f.IsInvited {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}
