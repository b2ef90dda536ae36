package guest

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Service handles guest list business logic
type Service struct {
	store         Store
	publicBaseURL string
}

// NewService creates a new guest service. publicBaseURL prefixes invitation links.
func NewService(store Store, publicBaseURL string) *Service {
	return &Service{
		store:         store,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalid("invalid guest id %q", id)
	}
	return nil
}

func validateIDs(ids []string) error {
	if len(ids) == 0 {
		return invalid("ids must not be empty")
	}
	for _, id := range ids {
		if err := validateID(id); err != nil {
			return err
		}
	}
	return nil
}

func parseSide(value string) (Side, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if !IsValidSide(value) {
		return "", invalid("side must be bride or groom")
	}
	return Side(value), nil
}

func parseStatus(value string) (RSVPStatus, error) {
	if !IsValidStatus(value) {
		return "", invalid("rsvp_status must be pending, attending or declined")
	}
	return RSVPStatus(value), nil
}

// Create adds a guest on behalf of an administrator
func (s *Service) Create(ctx context.Context, req *CreateGuestRequest) (*Guest, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	side, err := parseSide(req.Side)
	if err != nil {
		return nil, err
	}
	if req.RSVPStatus == "" {
		return nil, invalid("rsvp_status is required")
	}
	status, err := parseStatus(req.RSVPStatus)
	if err != nil {
		return nil, err
	}

	inviteID := req.UniqueInviteID
	if inviteID == "" {
		inviteID = NewInviteID()
	}

	g, err := s.store.Create(ctx, &Guest{
		Name:           name,
		Side:           side,
		Tags:           NormalizeTags(req.Tags),
		UniqueInviteID: inviteID,
		RSVPStatus:     status,
		IsInvited:      req.IsInvited,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return g, nil
}

// CreateAnonymous registers a self-service RSVP. The guest is attending and tagged anonymous.
func (s *Service) CreateAnonymous(ctx context.Context, req *AnonymousRSVPRequest) (*Guest, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalid("name is required")
	}
	side, err := parseSide(req.Side)
	if err != nil {
		return nil, err
	}

	g, err := s.store.Create(ctx, &Guest{
		Name:           name,
		Side:           side,
		Tags:           []string{AnonymousTag},
		UniqueInviteID: NewInviteID(),
		RSVPStatus:     StatusAttending,
		IsInvited:      false,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return g, nil
}

// Import parses a CSV payload and inserts every accepted row in one batch.
// It returns the persisted guests and the number of rows that were dropped.
func (s *Service) Import(ctx context.Context, content string) ([]*Guest, int, error) {
	parsed, err := ParseCSV(content)
	if err != nil {
		return nil, 0, err
	}

	created, err := s.store.CreateMany(ctx, parsed.Guests)
	if err != nil {
		return nil, 0, storeErr(err)
	}
	return created, parsed.Skipped, nil
}

// GetByID retrieves a guest by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Guest, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	g, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

// GetByInviteToken resolves an invitation link token to its guest
func (s *Service) GetByInviteToken(ctx context.Context, token string) (*Guest, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	g, err := s.store.GetByInviteID(ctx, token)
	if err != nil {
		return nil, storeErr(err)
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

// List retrieves the guests matching filter, newest first
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Guest, error) {
	if filter.Side != "" && !IsValidSide(string(filter.Side)) {
		return nil, invalid("side must be bride or groom")
	}
	if filter.RSVPStatus != "" && !IsValidStatus(string(filter.RSVPStatus)) {
		return nil, invalid("rsvp_status must be pending, attending or declined")
	}
	filter.Side = Side(strings.ToLower(string(filter.Side)))

	guests, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, storeErr(err)
	}
	return guests, nil
}

// patchFromRequest converts a partial update body into a validated patch
func patchFromRequest(req *UpdateGuestRequest) (*GuestPatch, error) {
	patch := &GuestPatch{IsInvited: req.IsInvited}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		patch.Name = &name
	}
	if req.Side != nil {
		side, err := parseSide(*req.Side)
		if err != nil {
			return nil, err
		}
		patch.Side = &side
	}
	if req.Tags != nil {
		patch.Tags = NormalizeTags(*req.Tags)
		patch.SetTags = true
	}
	if req.RSVPStatus != nil {
		status, err := parseStatus(*req.RSVPStatus)
		if err != nil {
			return nil, err
		}
		patch.RSVPStatus = &status
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return patch, nil
}

func (s *Service) apply(ctx context.Context, id string, patch *GuestPatch) (*Guest, error) {
	g, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, storeErr(err)
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

// UpdateByID changes only the fields present in req
func (s *Service) UpdateByID(ctx context.Context, id string, req *UpdateGuestRequest) (*Guest, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	patch, err := patchFromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, patch)
}

// UpdateStatus sets a guest's RSVP status from the admin area
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*Guest, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	st, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, id, &GuestPatch{RSVPStatus: &st})
}

// UpdateByInviteToken records a guest's own response. Only attending and declined are accepted.
func (s *Service) UpdateByInviteToken(ctx context.Context, token, status string) (*Guest, error) {
	g, err := s.GetByInviteToken(ctx, token)
	if err != nil {
		return nil, err
	}

	st := RSVPStatus(status)
	if st != StatusAttending && st != StatusDeclined {
		return nil, invalid("rsvp_status must be attending or declined")
	}
	return s.apply(ctx, g.ID, &GuestPatch{RSVPStatus: &st})
}

// BulkUpdate applies the same side, status or invited flag to every listed guest
func (s *Service) BulkUpdate(ctx context.Context, req *BulkUpdateRequest) (int, error) {
	if err := validateIDs(req.IDs); err != nil {
		return 0, err
	}
	if req.Side == nil && req.RSVPStatus == nil && req.IsInvited == nil {
		return 0, invalid("no fields to update")
	}

	patch := &GuestPatch{IsInvited: req.IsInvited}
	if req.Side != nil {
		side, err := parseSide(*req.Side)
		if err != nil {
			return 0, err
		}
		patch.Side = &side
	}
	if req.RSVPStatus != nil {
		status, err := parseStatus(*req.RSVPStatus)
		if err != nil {
			return 0, err
		}
		patch.RSVPStatus = &status
	}

	n, err := s.store.UpdateMany(ctx, req.IDs, patch)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// Delete permanently removes a guest
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	found, err := s.store.Delete(ctx, id)
	if err != nil {
		return storeErr(err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// BulkDelete permanently removes every listed guest
func (s *Service) BulkDelete(ctx context.Context, ids []string) (int, error) {
	if err := validateIDs(ids); err != nil {
		return 0, err
	}
	n, err := s.store.DeleteMany(ctx, ids)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// ToggleInvited flips whether the invitation has been delivered
func (s *Service) ToggleInvited(ctx context.Context, id string) (*Guest, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	invited := !g.IsInvited
	return s.apply(ctx, id, &GuestPatch{IsInvited: &invited})
}

// InviteLink builds the guest's personal invitation URL and marks the guest invited
func (s *Service) InviteLink(ctx context.Context, id string) (string, *Guest, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if !g.IsInvited {
		invited := true
		if g, err = s.apply(ctx, id, &GuestPatch{IsInvited: &invited}); err != nil {
			return "", nil, err
		}
	}
	return s.publicBaseURL + "/invite/" + g.UniqueInviteID, g, nil
}

// Stats summarizes the current guest list
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	guests, err := s.store.List(ctx, ListFilter{})
	if err != nil {
		return Stats{}, storeErr(err)
	}
	return ComputeStats(guests), nil
}
