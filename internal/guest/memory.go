package guest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps guests in process memory. Used for local runs and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	guests []*Guest
	now    func() time.Time
}

// NewMemoryStore creates an empty in-memory guest store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		guests: make([]*Guest, 0),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func clone(g *Guest) *Guest {
	c := *g
	c.Tags = append([]string{}, g.Tags...)
	return &c
}

func (m *MemoryStore) indexOf(id string) int {
	for i, g := range m.guests {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (m *MemoryStore) inviteIDTaken(inviteID string) bool {
	for _, g := range m.guests {
		if g.UniqueInviteID == inviteID {
			return true
		}
	}
	return false
}

// List returns matching guests, newest first
func (m *MemoryStore) List(_ context.Context, filter ListFilter) ([]*Guest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*Guest{}
	for i := len(m.guests) - 1; i >= 0; i-- {
		if filter.Matches(m.guests[i]) {
			out = append(out, clone(m.guests[i]))
		}
	}
	return out, nil
}

// GetByID retrieves a guest by its ID
func (m *MemoryStore) GetByID(_ context.Context, id string) (*Guest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(id); i >= 0 {
		return clone(m.guests[i]), nil
	}
	return nil, nil
}

// GetByInviteID retrieves a guest by invitation token
func (m *MemoryStore) GetByInviteID(_ context.Context, inviteID string) (*Guest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, g := range m.guests {
		if g.UniqueInviteID == inviteID {
			return clone(g), nil
		}
	}
	return nil, nil
}

func (m *MemoryStore) insert(g *Guest) *Guest {
	now := m.now()
	row := clone(g)
	row.ID = uuid.NewString()
	row.Tags = NormalizeTags(g.Tags)
	row.CreatedAt = now
	row.UpdatedAt = now
	m.guests = append(m.guests, row)
	return clone(row)
}

// Create stores a new guest
func (m *MemoryStore) Create(_ context.Context, g *Guest) (*Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inviteIDTaken(g.UniqueInviteID) {
		return nil, invalid("unique_invite_id %q is already in use", g.UniqueInviteID)
	}
	return m.insert(g), nil
}

// CreateMany stores all guests or none of them
func (m *MemoryStore) CreateMany(_ context.Context, guests []*Guest) ([]*Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{}, len(guests))
	for _, g := range guests {
		if _, dup := seen[g.UniqueInviteID]; dup || m.inviteIDTaken(g.UniqueInviteID) {
			return nil, invalid("unique_invite_id %q is already in use", g.UniqueInviteID)
		}
		seen[g.UniqueInviteID] = struct{}{}
	}

	created := make([]*Guest, 0, len(guests))
	for _, g := range guests {
		created = append(created, m.insert(g))
	}
	return created, nil
}

func (m *MemoryStore) patch(g *Guest, patch *GuestPatch) {
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.Side != nil {
		g.Side = *patch.Side
	}
	if patch.SetTags {
		g.Tags = NormalizeTags(patch.Tags)
	}
	if patch.RSVPStatus != nil {
		g.RSVPStatus = *patch.RSVPStatus
	}
	if patch.IsInvited != nil {
		g.IsInvited = *patch.IsInvited
	}
	g.UpdatedAt = m.now()
}

// Update applies patch to one guest
func (m *MemoryStore) Update(_ context.Context, id string, patch *GuestPatch) (*Guest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	m.patch(m.guests[i], patch)
	return clone(m.guests[i]), nil
}

// UpdateMany applies patch to every listed guest under one lock
func (m *MemoryStore) UpdateMany(_ context.Context, ids []string, patch *GuestPatch) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := toSet(ids)
	n := 0
	for _, g := range m.guests {
		if _, ok := want[g.ID]; ok {
			m.patch(g, patch)
			n++
		}
	}
	return n, nil
}

// Delete removes one guest
func (m *MemoryStore) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		return false, nil
	}
	m.guests = append(m.guests[:i], m.guests[i+1:]...)
	return true, nil
}

// DeleteMany removes every listed guest under one lock
func (m *MemoryStore) DeleteMany(_ context.Context, ids []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := toSet(ids)
	kept := m.guests[:0]
	n := 0
	for _, g := range m.guests {
		if _, ok := want[g.ID]; ok {
			n++
			continue
		}
		kept = append(kept, g)
	}
	m.guests = kept
	return n, nil
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

var _ Store = (*MemoryStore)(nil)
