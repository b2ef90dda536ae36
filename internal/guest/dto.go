package guest

// CreateGuestRequest represents the request body for adding a guest
type CreateGuestRequest struct {
	Name           string   `json:"name" validate:"required"`
	Side           string   `json:"side" validate:"required"`
	Tags           []string `json:"tags,omitempty"`
	RSVPStatus     string   `json:"rsvp_status" validate:"required"`
	UniqueInviteID string   `json:"unique_invite_id,omitempty" validate:"omitempty,min=8,max=10,alphanum"`
	IsInvited      bool     `json:"is_invited"`
}

// UpdateGuestRequest represents a partial guest update; absent fields are left alone
type UpdateGuestRequest struct {
	Name       *string   `json:"name,omitempty"`
	Side       *string   `json:"side,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	RSVPStatus *string   `json:"rsvp_status,omitempty"`
	IsInvited  *bool     `json:"is_invited,omitempty"`
}

// UpdateStatusRequest represents the body of a status-only patch
type UpdateStatusRequest struct {
	RSVPStatus string `json:"rsvp_status"`
}

// BulkDeleteRequest represents the body of a bulk delete
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// BulkUpdateRequest represents the body of a bulk update
type BulkUpdateRequest struct {
	IDs        []string `json:"ids"`
	Side       *string  `json:"side,omitempty"`
	RSVPStatus *string  `json:"rsvp_status,omitempty"`
	IsInvited  *bool    `json:"is_invited,omitempty"`
}

// AnonymousRSVPRequest represents a self-service RSVP without an invitation link
type AnonymousRSVPRequest struct {
	Name string `json:"name" validate:"required"`
	Side string `json:"side" validate:"required"`
}

// GuestResponse represents the response for a single guest
type GuestResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Side           Side       `json:"side"`
	Tags           []string   `json:"tags"`
	UniqueInviteID string     `json:"unique_invite_id"`
	RSVPStatus     RSVPStatus `json:"rsvp_status"`
	IsInvited      bool       `json:"is_invited"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// InvitationResponse is the public view of a guest reached through an invite link
type InvitationResponse struct {
	Name           string     `json:"name"`
	Side           Side       `json:"side"`
	UniqueInviteID string     `json:"unique_invite_id"`
	RSVPStatus     RSVPStatus `json:"rsvp_status"`
}

// ImportResponse represents the result of a CSV import
type ImportResponse struct {
	Message string           `json:"message"`
	Guests  []*GuestResponse `json:"guests"`
	Skipped int              `json:"skipped"`
}

// BulkResponse represents the result of a bulk mutation
type BulkResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// InviteLinkResponse carries a guest's personal invitation link
type InviteLinkResponse struct {
	URL   string         `json:"url"`
	Guest *GuestResponse `json:"guest"`
}

// AnonymousRSVPResponse represents the result of a self-service RSVP
type AnonymousRSVPResponse struct {
	Message string         `json:"message"`
	Guest   *GuestResponse `json:"guest"`
}

// ToResponse converts a Guest model to a GuestResponse DTO
func (g *Guest) ToResponse() *GuestResponse {
	tags := g.Tags
	if tags == nil {
		tags = []string{}
	}
	return &GuestResponse{
		ID:             g.ID,
		Name:           g.Name,
		Side:           g.Side,
		Tags:           tags,
		UniqueInviteID: g.UniqueInviteID,
		RSVPStatus:     g.RSVPStatus,
		IsInvited:      g.IsInvited,
		CreatedAt:      g.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt:      g.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// ToInvitation converts a Guest model to its public invitation view
func (g *Guest) ToInvitation() *InvitationResponse {
	return &InvitationResponse{
		Name:           g.Name,
		Side:           g.Side,
		UniqueInviteID: g.UniqueInviteID,
		RSVPStatus:     g.RSVPStatus,
	}
}

func toResponses(guests []*Guest) []*GuestResponse {
	out := make([]*GuestResponse, len(guests))
	for i, g := range guests {
		out[i] = g.ToResponse()
	}
	return out
}
