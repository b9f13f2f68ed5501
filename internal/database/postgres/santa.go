package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// SantaRepository implements repository.Santa
type SantaRepository struct {
	db *pgxpool.Pool
}

// NewSantaRepository creates a new gift exchange repository
func NewSantaRepository(db *pgxpool.Pool) *SantaRepository {
	return &SantaRepository{db: db}
}

// UpsertParticipant inserts or updates a signup. The original joined_at is
// preserved on update.
func (r *SantaRepository) UpsertParticipant(ctx context.Context, p domain.Participant) error {
	query := `
		INSERT INTO santa_participants (participant_id, display_name, handle, avoid_list, eligible, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (participant_id) DO UPDATE
		SET display_name = EXCLUDED.display_name,
		    handle = EXCLUDED.handle,
		    avoid_list = EXCLUDED.avoid_list,
		    eligible = EXCLUDED.eligible
	`
	avoidList := p.AvoidList
	if avoidList == nil {
		avoidList = []string{}
	}
	_, err := r.db.Exec(ctx, query, p.ID, p.DisplayName, p.Handle, avoidList, p.Eligible, p.JoinedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertParticipant, err)
	}
	return nil
}

// GetParticipant retrieves a signup by ID, returning nil when none exists
func (r *SantaRepository) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	query := `
		SELECT participant_id, display_name, handle, avoid_list, eligible, joined_at
		FROM santa_participants
		WHERE participant_id = $1
	`
	var p domain.Participant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.DisplayName,
		&p.Handle,
		&p.AvoidList,
		&p.Eligible,
		&p.JoinedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetParticipant, err)
	}
	return &p, nil
}

// ListParticipants returns all signups in join order
func (r *SantaRepository) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	query := `
		SELECT participant_id, display_name, handle, avoid_list, eligible, joined_at
		FROM santa_participants
		ORDER BY joined_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.Handle, &p.AvoidList, &p.Eligible, &p.JoinedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListParticipants, err)
	}
	return participants, nil
}

// DeleteParticipant removes a signup; cascades to any match rows
func (r *SantaRepository) DeleteParticipant(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM santa_participants WHERE participant_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteParticipant, err)
	}
	return nil
}

// GetSettings returns the exchange settings row, or defaults if missing
func (r *SantaRepository) GetSettings(ctx context.Context) (*domain.ExchangeSettings, error) {
	query := `
		SELECT signups_open, deadline, matched_at
		FROM santa_settings
		WHERE singleton = 1
	`
	var settings domain.ExchangeSettings
	err := r.db.QueryRow(ctx, query).Scan(&settings.SignupsOpen, &settings.Deadline, &settings.MatchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.ExchangeSettings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSettings, err)
	}
	return &settings, nil
}

// SaveSettings writes the exchange settings row
func (r *SantaRepository) SaveSettings(ctx context.Context, settings domain.ExchangeSettings) error {
	query := `
		INSERT INTO santa_settings (singleton, signups_open, deadline, matched_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (singleton) DO UPDATE
		SET signups_open = EXCLUDED.signups_open,
		    deadline = EXCLUDED.deadline,
		    matched_at = EXCLUDED.matched_at
	`
	_, err := r.db.Exec(ctx, query, settings.SignupsOpen, settings.Deadline, settings.MatchedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSettings, err)
	}
	return nil
}

// ReplaceMatches atomically swaps the stored match set for a new one
func (r *SantaRepository) ReplaceMatches(ctx context.Context, matches []domain.Match) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM santa_matches`); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceMatches, err)
	}

	query := `
		INSERT INTO santa_matches (sender_id, receiver_id, forced)
		VALUES ($1, $2, $3)
	`
	for _, m := range matches {
		if _, err := tx.Exec(ctx, query, m.SenderID, m.ReceiverID, m.Forced); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceMatches, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// ListMatches returns the stored match set
func (r *SantaRepository) ListMatches(ctx context.Context) ([]domain.Match, error) {
	query := `
		SELECT sender_id, receiver_id, forced
		FROM santa_matches
		ORDER BY created_at, sender_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(&m.SenderID, &m.ReceiverID, &m.Forced); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMatches, err)
	}
	return matches, nil
}

// GetMatchBySender returns a sender's assignment, or nil when unmatched
func (r *SantaRepository) GetMatchBySender(ctx context.Context, senderID string) (*domain.Match, error) {
	query := `
		SELECT sender_id, receiver_id, forced
		FROM santa_matches
		WHERE sender_id = $1
	`
	var m domain.Match
	err := r.db.QueryRow(ctx, query, senderID).Scan(&m.SenderID, &m.ReceiverID, &m.Forced)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMatch, err)
	}
	return &m, nil
}
