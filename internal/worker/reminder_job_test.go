package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootsofthewild/rootsbot/internal/domain"
	"github.com/rootsofthewild/rootsbot/internal/event"
	"github.com/rootsofthewild/rootsbot/internal/santa"
)

// fakeSantaService stubs out Settings; the embedded interface panics on
// anything else the job should never call.
type fakeSantaService struct {
	santa.Service
	settings *domain.ExchangeSettings
}

func (f *fakeSantaService) Settings(ctx context.Context) (*domain.ExchangeSettings, error) {
	return f.settings, nil
}

func reminderFixture(settings *domain.ExchangeSettings, now time.Time) (*ReminderJob, *[]event.Event) {
	bus := event.NewMemoryBus()
	received := &[]event.Event{}
	bus.Subscribe(event.SantaReminderDue, func(ctx context.Context, e event.Event) error {
		*received = append(*received, e)
		return nil
	})
	job := NewReminderJob(&fakeSantaService{settings: settings}, bus,
		WithReminderClock(func() time.Time { return now }))
	return job, received
}

func TestReminderJob(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.December, 20, 9, 0, 0, 0, time.UTC)

	t.Run("silent before matching", func(t *testing.T) {
		deadline := now.Add(48 * time.Hour)
		job, received := reminderFixture(&domain.ExchangeSettings{Deadline: &deadline}, now)

		require.NoError(t, job.Process(ctx))
		assert.Empty(t, *received)
	})

	t.Run("silent without a deadline", func(t *testing.T) {
		matched := now.Add(-time.Hour)
		job, received := reminderFixture(&domain.ExchangeSettings{MatchedAt: &matched}, now)

		require.NoError(t, job.Process(ctx))
		assert.Empty(t, *received)
	})

	t.Run("silent after the deadline passes", func(t *testing.T) {
		matched := now.Add(-72 * time.Hour)
		deadline := now.Add(-time.Hour)
		job, received := reminderFixture(&domain.ExchangeSettings{MatchedAt: &matched, Deadline: &deadline}, now)

		require.NoError(t, job.Process(ctx))
		assert.Empty(t, *received)
	})

	t.Run("publishes with days remaining rounded up", func(t *testing.T) {
		matched := now.Add(-time.Hour)
		deadline := now.Add(36 * time.Hour)
		job, received := reminderFixture(&domain.ExchangeSettings{MatchedAt: &matched, Deadline: &deadline}, now)

		require.NoError(t, job.Process(ctx))
		require.Len(t, *received, 1)

		payload, ok := (*received)[0].Payload.(event.ReminderDuePayloadV1)
		require.True(t, ok)
		assert.Equal(t, 2, payload.DaysLeft)
		assert.Equal(t, deadline.Unix(), payload.Deadline)
	})

	t.Run("fires at most once per day", func(t *testing.T) {
		matched := now.Add(-time.Hour)
		deadline := now.Add(48 * time.Hour)
		job, received := reminderFixture(&domain.ExchangeSettings{MatchedAt: &matched, Deadline: &deadline}, now)

		require.NoError(t, job.Process(ctx))
		require.NoError(t, job.Process(ctx))
		assert.Len(t, *received, 1)
	})
}
