package blight

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rootsofthewild/rootsbot/internal/domain"
	"github.com/rootsofthewild/rootsbot/internal/event"
	"github.com/rootsofthewild/rootsbot/internal/logger"
	"github.com/rootsofthewild/rootsbot/internal/metrics"
	"github.com/rootsofthewild/rootsbot/internal/repository"
)

// HealOutcome reports a treatment attempt
type HealOutcome struct {
	Roll      int
	Succeeded bool
	Stage     domain.BlightStage
}

// Service defines the interface for blight operations
type Service interface {
	Register(ctx context.Context, characterID, ownerID, name string) error
	Infect(ctx context.Context, characterID string) error
	Heal(ctx context.Context, characterID string) (*HealOutcome, error)
	Status(ctx context.Context, ownerID string) ([]domain.BlightRecord, error)
	ProgressAll(ctx context.Context) error
}

type service struct {
	repo     repository.Blight
	eventBus event.Bus
	roll     func() int // uniform in [0,100)
}

// Option configures the service
type Option func(*service)

// WithRollFunc overrides the d100 roll source (used by tests)
func WithRollFunc(roll func() int) Option {
	return func(s *service) {
		s.roll = roll
	}
}

// NewService creates a new blight service
func NewService(repo repository.Blight, eventBus event.Bus, opts ...Option) Service {
	s := &service{
		repo:     repo,
		eventBus: eventBus,
		// The global source is locked internally, so concurrent heals and
		// progression ticks are safe.
		roll: func() int { return rand.Intn(100) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds a healthy character record
func (s *service) Register(ctx context.Context, characterID, ownerID, name string) error {
	if characterID == "" || ownerID == "" {
		return domain.ErrInvalidInput
	}
	return s.repo.UpsertRecord(ctx, domain.BlightRecord{
		CharacterID: characterID,
		OwnerID:     ownerID,
		Name:        name,
		Stage:       domain.BlightHealthy,
		UpdatedAt:   time.Now().UTC(),
	})
}

// Infect marks a character as blighted at stage 1
func (s *service) Infect(ctx context.Context, characterID string) error {
	record, err := s.getRecord(ctx, characterID)
	if err != nil {
		return err
	}
	if record.Stage == domain.BlightDead {
		return domain.ErrCharacterDead
	}
	if record.Stage.Infected() {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyInfected, record.Name)
	}

	now := time.Now().UTC()
	record.Stage = domain.BlightStage1
	record.InfectedAt = &now
	record.UpdatedAt = now

	logger.FromContext(ctx).Info(LogMsgCharacterInfected, "character", record.Name)
	return s.repo.UpsertRecord(ctx, *record)
}

// Heal rolls a treatment attempt on an infected character. A successful
// roll steps the infection back one stage; stage 1 heals to recovered.
func (s *service) Heal(ctx context.Context, characterID string) (*HealOutcome, error) {
	record, err := s.getRecord(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if !record.Stage.Infected() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotInfected, record.Name)
	}

	roll := s.roll() + 1
	outcome := &HealOutcome{Roll: roll, Stage: record.Stage}
	if roll < HealSuccessThreshold {
		return outcome, nil
	}

	outcome.Succeeded = true
	if record.Stage == domain.BlightStage1 {
		record.Stage = domain.BlightRecovered
		logger.FromContext(ctx).Info(LogMsgCharacterRecovered, "character", record.Name)
	} else {
		record.Stage--
	}
	record.UpdatedAt = time.Now().UTC()
	outcome.Stage = record.Stage

	if err := s.repo.UpsertRecord(ctx, *record); err != nil {
		return nil, err
	}
	return outcome, nil
}

// Status lists a player's character records
func (s *service) Status(ctx context.Context, ownerID string) ([]domain.BlightRecord, error) {
	return s.repo.ListRecordsByOwner(ctx, ownerID)
}

// ProgressAll advances every infected character one daily tick: a small
// chance of spontaneous recovery, otherwise a chance to worsen; worsening
// past stage 3 is fatal.
func (s *service) ProgressAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	infected, err := s.repo.ListInfected(ctx)
	if err != nil {
		return fmt.Errorf("failed to list infected characters: %w", err)
	}

	var worsened, recovered, died int
	for _, record := range infected {
		roll := s.roll()
		switch {
		case roll < RecoverChance:
			record.Stage = domain.BlightRecovered
			recovered++
			log.Info(LogMsgCharacterRecovered, "character", record.Name)
		case roll < RecoverChance+WorsenChance:
			if record.Stage == domain.BlightStage3 {
				record.Stage = domain.BlightDead
				died++
				log.Warn(LogMsgCharacterDied, "character", record.Name)
			} else {
				record.Stage++
				worsened++
				log.Info(LogMsgCharacterWorsened, "character", record.Name, "stage", record.Stage.String())
			}
		default:
			continue
		}

		record.UpdatedAt = time.Now().UTC()
		if err := s.repo.UpsertRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to update character %s: %w", record.CharacterID, err)
		}
	}

	metrics.BlightTicksTotal.Inc()
	log.Info(LogMsgBlightTick, "infected", len(infected), "worsened", worsened, "recovered", recovered, "died", died)

	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.BlightProgressed,
		Payload: event.BlightProgressedPayloadV1{Worsened: worsened, Recovered: recovered, Died: died},
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		log.Error("Failed to publish blight event", "error", err)
	}
	return nil
}

func (s *service) getRecord(ctx context.Context, characterID string) (*domain.BlightRecord, error) {
	record, err := s.repo.GetRecord(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load character: %w", err)
	}
	if record == nil {
		return nil, domain.ErrCharacterNotFound
	}
	return record, nil
}
