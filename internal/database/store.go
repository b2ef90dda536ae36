package database

import (
	"fmt"

	"github.com/supabase-community/supabase-go"

	"github.com/fkhayef/wedding-rsvp/internal/config"
	"github.com/fkhayef/wedding-rsvp/internal/guest"
)

// NewSupabaseClient connects to a hosted Supabase project
func NewSupabaseClient(url, anonKey string) (*supabase.Client, error) {
	client, err := supabase.NewClient(url, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return client, nil
}

// OpenGuestStore builds the guest store selected by STORE_DRIVER.
// The returned close function releases the underlying connection.
func OpenGuestStore(cfg *config.Config) (guest.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return guest.NewRepository(db), db.Close, nil
	case config.DriverSupabase:
		client, err := NewSupabaseClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		if err != nil {
			return nil, nil, err
		}
		return guest.NewSupabaseStore(client), noop, nil
	case config.DriverMemory:
		return guest.NewMemoryStore(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
