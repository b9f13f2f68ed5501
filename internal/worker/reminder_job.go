package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rootsofthewild/rootsbot/internal/event"
	"github.com/rootsofthewild/rootsbot/internal/logger"
	"github.com/rootsofthewild/rootsbot/internal/santa"
)

// ReminderJob publishes a gift-deadline reminder while an exchange is live.
// It fires at most once per UTC day so a short scheduler interval does not
// spam the announcement channel.
type ReminderJob struct {
	service  santa.Service
	eventBus event.Bus
	now      func() time.Time

	mu       sync.Mutex
	lastSent time.Time
}

// ReminderOption configures a ReminderJob
type ReminderOption func(*ReminderJob)

// WithReminderClock overrides the time source (used by tests)
func WithReminderClock(now func() time.Time) ReminderOption {
	return func(j *ReminderJob) {
		j.now = now
	}
}

// NewReminderJob creates a new ReminderJob
func NewReminderJob(service santa.Service, eventBus event.Bus, opts ...ReminderOption) *ReminderJob {
	j := &ReminderJob{
		service:  service,
		eventBus: eventBus,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Process checks the exchange deadline and publishes a reminder when one is due
func (j *ReminderJob) Process(ctx context.Context) error {
	settings, err := j.service.Settings(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", LogMsgReminderCheckFailed, err)
	}

	// Reminders only make sense once assignments exist and a deadline is set
	if settings.MatchedAt == nil || settings.Deadline == nil {
		return nil
	}

	now := j.now().UTC()
	remaining := settings.Deadline.Sub(now)
	if remaining <= 0 {
		return nil
	}

	if j.sentToday(now) {
		return nil
	}

	daysLeft := int((remaining + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.SantaReminderDue,
		Payload: event.ReminderDuePayloadV1{
			Deadline:  settings.Deadline.Unix(),
			DaysLeft:  daysLeft,
			Timestamp: now.Unix(),
		},
	}
	if err := j.eventBus.Publish(ctx, evt); err != nil {
		return fmt.Errorf("%s: %w", LogMsgReminderCheckFailed, err)
	}

	j.markSent(now)
	logger.FromContext(ctx).Info(LogMsgReminderPublished, "days_left", daysLeft)
	return nil
}

func (j *ReminderJob) sentToday(now time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	y1, m1, d1 := j.lastSent.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (j *ReminderJob) markSent(now time.Time) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lastSent = now
}
