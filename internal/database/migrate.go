package database

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

type migration struct {
	name  string
	query string
}

var migrations = []migration{
	{
		name: "create guests table",
		query: `
			CREATE TABLE IF NOT EXISTS guests (
				id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name             TEXT NOT NULL CHECK (btrim(name) <> ''),
				side             TEXT NOT NULL CHECK (side IN ('bride', 'groom')),
				tags             TEXT[] NOT NULL DEFAULT '{}',
				unique_invite_id TEXT NOT NULL UNIQUE CHECK (char_length(unique_invite_id) BETWEEN 8 AND 10),
				rsvp_status      TEXT NOT NULL DEFAULT 'pending' CHECK (rsvp_status IN ('pending', 'attending', 'declined')),
				is_invited       BOOLEAN NOT NULL DEFAULT FALSE,
				created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		name:  "index guests by creation time",
		query: `CREATE INDEX IF NOT EXISTS guests_created_at_idx ON guests (created_at DESC)`,
	},
	{
		name:  "index guests by side and status",
		query: `CREATE INDEX IF NOT EXISTS guests_side_status_idx ON guests (side, rsvp_status)`,
	},
}

// Migrate creates the schema in one transaction. Every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, m := range migrations {
		log.Info("running migration", zap.String("migration", m.name))
		if _, err := tx.ExecContext(ctx, m.query); err != nil {
			log.Error("migration failed", zap.String("migration", m.name), zap.Error(err))
			return fmt.Errorf("failed to %s: %w", m.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	log.Info("migrations complete", zap.Int("count", len(migrations)))
	return nil
}
