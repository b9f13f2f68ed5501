package weather

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

// Service defines the interface for weather operations
type Service interface {
	Current(ctx context.Context) (*domain.Weather, error)
	Regenerate(ctx context.Context) (*domain.Weather, error)
}

type service struct {
	repo     repository.Weather
	eventBus event.Bus
	newRNG   func() *rand.Rand
	now      func() time.Time
}

// Option configures the service
type Option func(*service)

// WithRandSource overrides the random source (used by tests)
func WithRandSource(newRNG func() *rand.Rand) Option {
	return func(s *service) {
		s.newRNG = newRNG
	}
}

// WithClock overrides the time source (used by tests)
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a new weather service
func NewService(repo repository.Weather, eventBus event.Bus, opts ...Option) Service {
	s := &service{
		repo:     repo,
		eventBus: eventBus,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the most recently generated weather
func (s *service) Current(ctx context.Context) (*domain.Weather, error) {
	w, err := s.repo.GetCurrent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weather: %w", err)
	}
	if w == nil {
		return nil, domain.ErrNoWeatherRecorded
	}
	return w, nil
}

// Regenerate rolls a fresh day of weather, persists it, and announces it
func (s *service) Regenerate(ctx context.Context) (*domain.Weather, error) {
	w := Generate(s.now(), s.newRNG())

	if err := s.repo.SaveCurrent(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save weather: %w", err)
	}

	metrics.WeatherUpdatesTotal.Inc()
	logger.FromContext(ctx).Info(LogMsgWeatherRegenerated,
		"season", w.Season, "condition", w.Condition, "temperature", w.Temperature)

	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.WeatherUpdated,
		Payload: event.WeatherUpdatedPayloadV1{Weather: w},
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish weather event", "error", err)
	}
	return &w, nil
}
