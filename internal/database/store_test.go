package database

import (
	"strings"
	"testing"

	"github.com/fkhayef/wedding-rsvp/internal/config"
	"github.com/fkhayef/wedding-rsvp/internal/guest"
)

func TestOpenGuestStore_Memory(t *testing.T) {
	store, closeStore, err := OpenGuestStore(&config.Config{StoreDriver: config.DriverMemory})
	if err != nil {
		t.Fatalf("OpenGuestStore returned error: %v", err)
	}
	defer closeStore()

	if _, ok := store.(*guest.MemoryStore); !ok {
		t.Errorf("expected a memory store, got %T", store)
	}
}

func TestOpenGuestStore_UnknownDriver(t *testing.T) {
	_, _, err := OpenGuestStore(&config.Config{StoreDriver: "mongo"})
	if err == nil || !strings.Contains(err.Error(), "mongo") {
		t.Errorf("expected unknown driver error, got %v", err)
	}
}

func TestMigrations_DefineGuestsTable(t *testing.T) {
	if len(migrations) == 0 {
		t.Fatal("no migrations defined")
	}
	var schema strings.Builder
	for _, m := range migrations {
		if m.name == "" {
			t.Error("migration without a name")
		}
		schema.WriteString(m.query)
	}
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS guests", "unique_invite_id TEXT NOT NULL UNIQUE", "TEXT[]", "'pending', 'attending', 'declined'"} {
		if !strings.Contains(schema.String(), want) {
			t.Errorf("schema is missing %q", want)
		}
	}
}
