package guest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// GuestsTable is the table guests are stored in
const GuestsTable = "guests"

// SupabaseStore persists guests through the Supabase REST API
type SupabaseStore struct {
	client *supabase.Client
}

// NewSupabaseStore creates a guest store backed by a Supabase project
func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

type supabaseInsert struct {
	Name           string     `json:"name"`
	Side           Side       `json:"side"`
	Tags           []string   `json:"tags"`
	UniqueInviteID string     `json:"unique_invite_id"`
	RSVPStatus     RSVPStatus `json:"rsvp_status"`
	IsInvited      bool       `json:"is_invited"`
}

func toInsert(g *Guest) supabaseInsert {
	return supabaseInsert{
		Name:           g.Name,
		Side:           g.Side,
		Tags:           NormalizeTags(g.Tags),
		UniqueInviteID: g.UniqueInviteID,
		RSVPStatus:     g.RSVPStatus,
		IsInvited:      g.IsInvited,
	}
}

func decodeGuests(raw []byte) ([]*Guest, error) {
	var guests []*Guest
	if err := json.Unmarshal(raw, &guests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest rows: %w", err)
	}
	for _, g := range guests {
		if g.Tags == nil {
			g.Tags = []string{}
		}
	}
	if guests == nil {
		guests = []*Guest{}
	}
	return guests, nil
}

// postgrest reports database errors as "(code) message"
func isPostgrestUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "(23505)")
}

func (s *SupabaseStore) first(ctx context.Context, column, value string) (*Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, _, err := s.client.From(GuestsTable).
		Select("*", "", false).
		Eq(column, value).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get guest by %s: %w", column, err)
	}
	guests, err := decodeGuests(raw)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, nil
	}
	return guests[0], nil
}

// List retrieves guests matching the filter, newest first
func (s *SupabaseStore) List(ctx context.Context, filter ListFilter) ([]*Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := s.client.From(GuestsTable).Select("*", "exact", false)
	if filter.Side != "" {
		q = q.Eq("side", string(filter.Side))
	}
	if filter.RSVPStatus != "" {
		q = q.Eq("rsvp_status", string(filter.RSVPStatus))
	}
	if filter.IsInvited != nil {
		q = q.Eq("is_invited", fmt.Sprintf("%t", *filter.IsInvited))
	}
	if filter.Search != "" {
		q = q.Ilike("name", postgrestPattern(filter.Search))
	}

	raw, _, err := q.Order("created_at", &postgrest.OrderOpts{Ascending: false}).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	guests, err := decodeGuests(raw)
	if err != nil {
		return nil, err
	}
	return narrow(guests, filter), nil
}

// PostgREST rewrites every * in a like pattern to %, so a literal * can only
// be sent as the single character wildcard and the listing is narrowed locally.
var postgrestEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`, `*`, `_`)

func postgrestPattern(search string) string {
	return "*" + postgrestEscaper.Replace(search) + "*"
}

func narrow(guests []*Guest, filter ListFilter) []*Guest {
	kept := guests[:0]
	for _, g := range guests {
		if filter.Matches(g) {
			kept = append(kept, g)
		}
	}
	return kept
}

// GetByID retrieves a guest by its ID
func (s *SupabaseStore) GetByID(ctx context.Context, id string) (*Guest, error) {
	return s.first(ctx, "id", id)
}

// GetByInviteID retrieves a guest by invitation token
func (s *SupabaseStore) GetByInviteID(ctx context.Context, inviteID string) (*Guest, error) {
	return s.first(ctx, "unique_invite_id", inviteID)
}

// Create inserts a new guest
func (s *SupabaseStore) Create(ctx context.Context, g *Guest) (*Guest, error) {
	created, err := s.CreateMany(ctx, []*Guest{g})
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("failed to create guest: no row returned")
	}
	return created[0], nil
}

// CreateMany inserts every guest in a single request; PostgREST runs it as one statement
func (s *SupabaseStore) CreateMany(ctx context.Context, guests []*Guest) ([]*Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := make([]supabaseInsert, len(guests))
	for i, g := range guests {
		rows[i] = toInsert(g)
	}

	raw, _, err := s.client.From(GuestsTable).
		Insert(rows, false, "", "representation", "").
		Execute()
	if err != nil {
		if isPostgrestUniqueViolation(err) {
			return nil, invalid("unique_invite_id is already in use")
		}
		return nil, fmt.Errorf("failed to insert guests: %w", err)
	}
	return decodeGuests(raw)
}

func patchValues(patch *GuestPatch) map[string]interface{} {
	values := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Side != nil {
		values["side"] = *patch.Side
	}
	if patch.SetTags {
		values["tags"] = NormalizeTags(patch.Tags)
	}
	if patch.RSVPStatus != nil {
		values["rsvp_status"] = *patch.RSVPStatus
	}
	if patch.IsInvited != nil {
		values["is_invited"] = *patch.IsInvited
	}
	return values
}

// Update modifies the fields present in patch
func (s *SupabaseStore) Update(ctx context.Context, id string, patch *GuestPatch) (*Guest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, _, err := s.client.From(GuestsTable).
		Update(patchValues(patch), "representation", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}
	guests, err := decodeGuests(raw)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, nil
	}
	return guests[0], nil
}

// UpdateMany applies patch to every listed guest in one request
func (s *SupabaseStore) UpdateMany(ctx context.Context, ids []string, patch *GuestPatch) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	raw, _, err := s.client.From(GuestsTable).
		Update(patchValues(patch), "representation", "").
		In("id", ids).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update guests: %w", err)
	}
	guests, err := decodeGuests(raw)
	if err != nil {
		return 0, err
	}
	return len(guests), nil
}

// Delete removes one guest
func (s *SupabaseStore) Delete(ctx context.Context, id string) (bool, error) {
	n, err := s.DeleteMany(ctx, []string{id})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteMany removes every listed guest in one request
func (s *SupabaseStore) DeleteMany(ctx context.Context, ids []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	raw, _, err := s.client.From(GuestsTable).
		Delete("representation", "").
		In("id", ids).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to delete guests: %w", err)
	}
	guests, err := decodeGuests(raw)
	if err != nil {
		return 0, err
	}
	return len(guests), nil
}

var _ Store = (*SupabaseStore)(nil)
