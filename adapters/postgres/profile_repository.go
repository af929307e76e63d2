package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tabprof/domain/core"
	"tabprof/domain/schema"
	apperrors "tabprof/internal/errors"
	"tabprof/ports"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) ports.ProfileRepository {
	return &profileRepository{db: db}
}

// EnsureSchema creates the profiles table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY,
		source_name TEXT NOT NULL,
		row_count INT NOT NULL,
		descriptor JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return apperrors.DatabaseError("failed to ensure profiles schema", err)
	}
	return nil
}

// Save inserts a built profile
func (r *profileRepository) Save(ctx context.Context, p *schema.Profile) error {
	descriptorJSON, err := json.Marshal(p.Descriptor)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	query := `INSERT INTO profiles (id, source_name, row_count, descriptor, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = r.db.ExecContext(ctx, query,
		p.ID.String(), p.SourceName, p.Descriptor.RowCount, descriptorJSON, p.CreatedAt,
	)
	if err != nil {
		return apperrors.DatabaseError("failed to save profile", err)
	}
	return nil
}

// GetByID retrieves a profile by its ID
func (r *profileRepository) GetByID(ctx context.Context, id core.ProfileID) (*schema.Profile, error) {
	query := `SELECT id, source_name, descriptor, created_at FROM profiles WHERE id = $1`

	var p schema.Profile
	var rawID string
	var descriptorJSON []byte

	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID, &p.SourceName, &descriptorJSON, &p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.NotFound("profile " + id.String())
		}
		return nil, apperrors.DatabaseError("failed to get profile", err)
	}

	p.ID = core.ProfileID(rawID)
	if err := json.Unmarshal(descriptorJSON, &p.Descriptor); err != nil {
		return nil, fmt.Errorf("failed to unmarshal descriptor: %w", err)
	}
	return &p, nil
}

// List retrieves stored profiles, newest first
func (r *profileRepository) List(ctx context.Context, limit, offset int) ([]*schema.Profile, error) {
	query := `SELECT id, source_name, descriptor, created_at FROM profiles
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list profiles", err)
	}
	defer rows.Close()

	var profiles []*schema.Profile
	for rows.Next() {
		var p schema.Profile
		var rawID string
		var descriptorJSON []byte
		if err := rows.Scan(&rawID, &p.SourceName, &descriptorJSON, &p.CreatedAt); err != nil {
			return nil, apperrors.DatabaseError("failed to scan profile", err)
		}
		p.ID = core.ProfileID(rawID)
		if err := json.Unmarshal(descriptorJSON, &p.Descriptor); err != nil {
			return nil, fmt.Errorf("failed to unmarshal descriptor: %w", err)
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}
