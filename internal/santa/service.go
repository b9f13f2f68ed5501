package santa

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rootsofthewild/rootsbot/internal/domain"
	"github.com/rootsofthewild/rootsbot/internal/event"
	"github.com/rootsofthewild/rootsbot/internal/logger"
	"github.com/rootsofthewild/rootsbot/internal/metrics"
	"github.com/rootsofthewild/rootsbot/internal/repository"
)

// Service defines the interface for gift exchange operations
type Service interface {
	Join(ctx context.Context, p domain.Participant) error
	Leave(ctx context.Context, participantID string) error
	SetAvoidList(ctx context.Context, participantID string, avoid []string) error
	SetEligible(ctx context.Context, participantID string, eligible bool) error
	Status(ctx context.Context, participantID string) (*domain.Participant, *domain.ExchangeSettings, error)
	Participants(ctx context.Context) ([]domain.Participant, error)

	OpenSignups(ctx context.Context) error
	CloseSignups(ctx context.Context) error
	SetDeadline(ctx context.Context, deadline time.Time) error
	Settings(ctx context.Context) (*domain.ExchangeSettings, error)

	RunMatching(ctx context.Context) (*domain.MatchResult, error)
	ListMatches(ctx context.Context) ([]domain.Match, error)
	Assignment(ctx context.Context, senderID string) (*domain.Participant, error)
}

type service struct {
	repo     repository.Santa
	eventBus event.Bus
	matcher  *Matcher
	validate *validator.Validate
	newRNG   func() *rand.Rand

	// Serializes matching runs; a run replaces the whole match table and
	// must never interleave with another.
	matchMu sync.Mutex
}

// Option configures the service
type Option func(*service)

// WithRandSource overrides the per-run random source (used by tests)
func WithRandSource(newRNG func() *rand.Rand) Option {
	return func(s *service) {
		s.newRNG = newRNG
	}
}

// NewService creates a new gift exchange service
func NewService(repo repository.Santa, eventBus event.Bus, maxAttempts int, opts ...Option) Service {
	s := &service{
		repo:     repo,
		eventBus: eventBus,
		matcher:  NewMatcher(maxAttempts),
		validate: validator.New(),
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Join signs a participant up for the exchange
func (s *service) Join(ctx context.Context, p domain.Participant) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgJoinCalled, "participant", p.ID, "name", p.Name())

	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoadSettings, err)
	}
	if !settings.SignupsOpen {
		return domain.ErrSignupsClosed
	}

	existing, err := s.repo.GetParticipant(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoadParticipants, err)
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", domain.ErrParticipantAlreadyJoined, p.Name())
	}

	p.JoinedAt = time.Now().UTC()
	return s.repo.UpsertParticipant(ctx, p)
}

// Leave removes a participant from the exchange
func (s *service) Leave(ctx context.Context, participantID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLeaveCalled, "participant", participantID)

	existing, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoadParticipants, err)
	}
	if existing == nil {
		return domain.ErrParticipantNotFound
	}
	return s.repo.DeleteParticipant(ctx, participantID)
}

// SetAvoidList replaces a participant's avoid list
func (s *service) SetAvoidList(ctx context.Context, participantID string, avoid []string) error {
	p, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoadParticipants, err)
	}
	if p == nil {
		return domain.ErrParticipantNotFound
	}

	p.AvoidList = avoid
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return s.repo.UpsertParticipant(ctx, *p)
}

// SetEligible toggles whether a participant is in the giftee pool.
// Ineligible (substitute-only) participants are dropped from the pool
// entirely before matching.
func (s *service) SetEligible(ctx context.Context, participantID string, eligible bool) error {
	p, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoadParticipants, err)
	}
	if p == nil {
		return domain.ErrParticipantNotFound
	}

	p.Eligible = eligible
	return s.repo.UpsertParticipant(ctx, *p)
}

// Status returns a participant's signup plus the current exchange settings
func (s *service) Status(ctx context.Context, participantID string) (*domain.Participant, *domain.ExchangeSettings, error) {
	p, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadParticipants, err)
	}
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadSettings, err)
	}
	return p, settings, nil
}

// Participants lists all signups
func (s *service) Participants(ctx context.Context) ([]domain.Participant, error) {
	return s.repo.ListParticipants(ctx)
}

// OpenSignups opens the exchange for signups
func (s *service) OpenSignups(ctx context.Context) error {
	return s.updateSettings(ctx, func(settings *domain.ExchangeSettings) {
		settings.SignupsOpen = true
	})
}

// CloseSignups closes the exchange for signups
func (s *service) CloseSignups(ctx context.Context) error {
	return s.updateSettings(ctx, func(settings *domain.ExchangeSettings) {
		settings.SignupsOpen = false
	})
}

// SetDeadline records the gift deadline used for reminder messaging
func (s *service) SetDeadline(ctx context.Context, deadline time.Time) error {
	return s.updateSettings(ctx, func(settings *domain.ExchangeSettings) {
		d := deadline.UTC()
		settings.Deadline = &d
	})
}

// Settings returns the current exchange settings
func (s *service) Settings(ctx context.Context) (*domain.ExchangeSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadSettings, err)
	}
	return settings, nil
}

func (s *service) updateSettings(ctx context.Context, mutate func(*domain.ExchangeSettings)) error {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToLoadSettings, err)
	}
	mutate(settings)
	if err := s.repo.SaveSettings(ctx, *settings); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSaveSettings, err)
	}
	return nil
}

// RunMatching loads the eligible pool, runs the matching engine, and
// atomically replaces the stored matches with the run's output.
// Runs are serialized; a second caller gets ErrMatchingInProgress.
func (s *service) RunMatching(ctx context.Context) (*domain.MatchResult, error) {
	if !s.matchMu.TryLock() {
		return nil, domain.ErrMatchingInProgress
	}
	defer s.matchMu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgRunMatchingCalled)

	all, err := s.repo.ListParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadParticipants, err)
	}

	pool := make([]domain.Participant, 0, len(all))
	for _, p := range all {
		if p.Eligible {
			pool = append(pool, p)
		}
	}

	log.Info(LogMsgMatchingStarted, "pool_size", len(pool), "signups", len(all))
	metrics.MatchRunsTotal.Inc()

	result, err := s.matcher.MatchAll(pool, s.newRNG())
	if err != nil {
		metrics.MatchRunFailuresTotal.Inc()
		return nil, err
	}

	metrics.MatchAttempts.Observe(float64(result.Attempts))
	metrics.MatchSwapsTotal.Add(float64(result.Swaps))
	metrics.MatchFallbacksTotal.Add(float64(result.Fallbacks))
	metrics.MatchUnmatchedTotal.Add(float64(len(result.Unmatched)))

	if err := s.repo.ReplaceMatches(ctx, result.Matches); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveMatches, err)
	}

	if err := s.updateSettings(ctx, func(settings *domain.ExchangeSettings) {
		now := time.Now().UTC()
		settings.MatchedAt = &now
		settings.SignupsOpen = false
	}); err != nil {
		return nil, err
	}

	s.publishMatchesCompleted(ctx, result)

	log.Info(LogMsgMatchingComplete,
		"matches", len(result.Matches),
		"unmatched", len(result.Unmatched),
		"attempts", result.Attempts,
		"swaps", result.Swaps,
		"fallbacks", result.Fallbacks)
	return &result, nil
}

// ListMatches returns the stored matches from the latest run
func (s *service) ListMatches(ctx context.Context) ([]domain.Match, error) {
	matches, err := s.repo.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrNoMatchesFound
	}
	return matches, nil
}

// Assignment returns the giftee assigned to a sender
func (s *service) Assignment(ctx context.Context, senderID string) (*domain.Participant, error) {
	match, err := s.repo.GetMatchBySender(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, domain.ErrNoMatchesFound
	}
	giftee, err := s.repo.GetParticipant(ctx, match.ReceiverID)
	if err != nil {
		return nil, err
	}
	if giftee == nil {
		return nil, fmt.Errorf("%w: giftee %s", domain.ErrParticipantNotFound, match.ReceiverID)
	}
	return giftee, nil
}

func (s *service) publishMatchesCompleted(ctx context.Context, result domain.MatchResult) {
	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SantaMatchesCompleted,
		Payload: event.MatchesCompletedPayloadV1{
			Matches:        result.Matches,
			UnmatchedCount: len(result.Unmatched),
			Attempts:       result.Attempts,
			UsedFallback:   result.UsedFallback(),
		},
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish matches completed event", "error", err)
	}
}
