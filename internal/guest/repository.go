package guest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Store is the row store the service persists guests through.
// Lookups return (nil, nil) when nothing matches.
type Store interface {
	List(ctx context.Context, filter ListFilter) ([]*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	GetByInviteID(ctx context.Context, inviteID string) (*Guest, error)
	Create(ctx context.Context, g *Guest) (*Guest, error)
	CreateMany(ctx context.Context, guests []*Guest) ([]*Guest, error)
	Update(ctx context.Context, id string, patch *GuestPatch) (*Guest, error)
	UpdateMany(ctx context.Context, ids []string, patch *GuestPatch) (int, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, ids []string) (int, error)
}

const guestColumns = `id, name, side, tags, unique_invite_id, rsvp_status, is_invited, created_at, updated_at`

// Repository handles guest persistence in Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new guest repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGuest(row rowScanner) (*Guest, error) {
	g := &Guest{}
	var tags pq.StringArray
	if err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Side,
		&tags,
		&g.UniqueInviteID,
		&g.RSVPStatus,
		&g.IsInvited,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	g.Tags = []string(tags)
	if g.Tags == nil {
		g.Tags = []string{}
	}
	return g, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds an ILIKE pattern matching search as a literal substring.
// Backslash is the default LIKE escape character in Postgres.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// List retrieves guests matching the filter, newest first
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]*Guest, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Side != "" {
		args = append(args, filter.Side)
		conds = append(conds, fmt.Sprintf("side = $%d", len(args)))
	}
	if filter.RSVPStatus != "" {
		args = append(args, filter.RSVPStatus)
		conds = append(conds, fmt.Sprintf("rsvp_status = $%d", len(args)))
	}
	if filter.IsInvited != nil {
		args = append(args, *filter.IsInvited)
		conds = append(conds, fmt.Sprintf("is_invited = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	query := `SELECT ` + guestColumns + ` FROM guests`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	defer rows.Close()

	guests := []*Guest{}
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}

	return guests, nil
}

// GetByID retrieves a guest by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	g, err := scanGuest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}

	return g, nil
}

// GetByInviteID retrieves a guest by the token embedded in their invitation link
func (r *Repository) GetByInviteID(ctx context.Context, inviteID string) (*Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE unique_invite_id = $1`

	g, err := scanGuest(r.db.QueryRowContext(ctx, query, inviteID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get guest by invite id: %w", err)
	}

	return g, nil
}

const insertGuestQuery = `
	INSERT INTO guests (name, side, tags, unique_invite_id, rsvp_status, is_invited)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + guestColumns

// Create inserts a new guest into the database
func (r *Repository) Create(ctx context.Context, g *Guest) (*Guest, error) {
	created, err := scanGuest(r.db.QueryRowContext(ctx, insertGuestQuery,
		g.Name,
		g.Side,
		pq.Array(NormalizeTags(g.Tags)),
		g.UniqueInviteID,
		g.RSVPStatus,
		g.IsInvited,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, invalid("unique_invite_id %q is already in use", g.UniqueInviteID)
		}
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	return created, nil
}

// CreateMany inserts all guests in one transaction
func (r *Repository) CreateMany(ctx context.Context, guests []*Guest) ([]*Guest, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertGuestQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare import: %w", err)
	}
	defer stmt.Close()

	created := make([]*Guest, 0, len(guests))
	for _, g := range guests {
		row, err := scanGuest(stmt.QueryRowContext(ctx,
			g.Name,
			g.Side,
			pq.Array(NormalizeTags(g.Tags)),
			g.UniqueInviteID,
			g.RSVPStatus,
			g.IsInvited,
		))
		if err != nil {
			if isUniqueViolation(err) {
				return nil, invalid("unique_invite_id %q is already in use", g.UniqueInviteID)
			}
			return nil, fmt.Errorf("failed to import guest %q: %w", g.Name, err)
		}
		created = append(created, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit import: %w", err)
	}

	return created, nil
}

// patchArgs orders the patch fields for the COALESCE update statements
func patchArgs(patch *GuestPatch) []any {
	var tags any
	if patch.SetTags {
		tags = pq.Array(NormalizeTags(patch.Tags))
	}
	return []any{patch.Name, patch.Side, tags, patch.RSVPStatus, patch.IsInvited}
}

// Update modifies the fields present in patch
func (r *Repository) Update(ctx context.Context, id string, patch *GuestPatch) (*Guest, error) {
	query := `
		UPDATE guests
		SET name = COALESCE($2, name),
		    side = COALESCE($3, side),
		    tags = COALESCE($4::text[], tags),
		    rsvp_status = COALESCE($5, rsvp_status),
		    is_invited = COALESCE($6, is_invited),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + guestColumns

	args := append([]any{id}, patchArgs(patch)...)
	g, err := scanGuest(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	return g, nil
}

// UpdateMany applies patch to every listed guest in a single statement
func (r *Repository) UpdateMany(ctx context.Context, ids []string, patch *GuestPatch) (int, error) {
	query := `
		UPDATE guests
		SET name = COALESCE($2, name),
		    side = COALESCE($3, side),
		    tags = COALESCE($4::text[], tags),
		    rsvp_status = COALESCE($5, rsvp_status),
		    is_invited = COALESCE($6, is_invited),
		    updated_at = NOW()
		WHERE id = ANY($1::uuid[])`

	args := append([]any{pq.Array(ids)}, patchArgs(patch)...)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update guests: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

// Delete removes a guest from the database
func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete guest: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// DeleteMany removes every listed guest in a single statement
func (r *Repository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ANY($1::uuid[])`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete guests: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rowsAffected), nil
}

var _ Store = (*Repository)(nil)
