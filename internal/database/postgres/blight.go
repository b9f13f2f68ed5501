package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// BlightRepository implements repository.Blight
type BlightRepository struct {
	db *pgxpool.Pool
}

// NewBlightRepository creates a new blight repository
func NewBlightRepository(db *pgxpool.Pool) *BlightRepository {
	return &BlightRepository{db: db}
}

// UpsertRecord inserts or updates a character's infection record
func (r *BlightRepository) UpsertRecord(ctx context.Context, record domain.BlightRecord) error {
	query := `
		INSERT INTO blight_records (character_id, owner_id, name, stage, infected_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (character_id) DO UPDATE
		SET owner_id = EXCLUDED.owner_id,
		    name = EXCLUDED.name,
		    stage = EXCLUDED.stage,
		    infected_at = EXCLUDED.infected_at,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		record.CharacterID,
		record.OwnerID,
		record.Name,
		int(record.Stage),
		record.InfectedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertBlightRecord, err)
	}
	return nil
}

// GetRecord retrieves a character's record, returning nil when none exists
func (r *BlightRepository) GetRecord(ctx context.Context, characterID string) (*domain.BlightRecord, error) {
	query := `
		SELECT character_id, owner_id, name, stage, infected_at, updated_at
		FROM blight_records
		WHERE character_id = $1
	`
	record, err := scanBlightRecord(r.db.QueryRow(ctx, query, characterID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetBlightRecord, err)
	}
	return record, nil
}

// ListRecordsByOwner returns all of a player's character records
func (r *BlightRepository) ListRecordsByOwner(ctx context.Context, ownerID string) ([]domain.BlightRecord, error) {
	query := `
		SELECT character_id, owner_id, name, stage, infected_at, updated_at
		FROM blight_records
		WHERE owner_id = $1
		ORDER BY name
	`
	return r.listRecords(ctx, query, ownerID)
}

// ListInfected returns every record currently carrying the blight
func (r *BlightRepository) ListInfected(ctx context.Context) ([]domain.BlightRecord, error) {
	query := `
		SELECT character_id, owner_id, name, stage, infected_at, updated_at
		FROM blight_records
		WHERE stage BETWEEN $1 AND $2
		ORDER BY character_id
	`
	return r.listRecords(ctx, query, int(domain.BlightStage1), int(domain.BlightStage3))
}

func (r *BlightRepository) listRecords(ctx context.Context, query string, args ...any) ([]domain.BlightRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBlightRecords, err)
	}
	defer rows.Close()

	var records []domain.BlightRecord
	for rows.Next() {
		record, err := scanBlightRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBlightRecords, err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListBlightRecords, err)
	}
	return records, nil
}

func scanBlightRecord(row pgx.Row) (*domain.BlightRecord, error) {
	var record domain.BlightRecord
	var stage int
	err := row.Scan(
		&record.CharacterID,
		&record.OwnerID,
		&record.Name,
		&stage,
		&record.InfectedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Stage = domain.BlightStage(stage)
	return &record, nil
}
