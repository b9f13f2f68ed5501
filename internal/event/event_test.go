package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus(t *testing.T) {
	t.Run("delivers to subscribers of the type", func(t *testing.T) {
		bus := NewMemoryBus()
		var got []Event
		bus.Subscribe(WeatherUpdated, func(ctx context.Context, e Event) error {
			got = append(got, e)
			return nil
		})

		err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: WeatherUpdated})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, WeatherUpdated, got[0].Type)
	})

	t.Run("ignores events with no subscribers", func(t *testing.T) {
		bus := NewMemoryBus()
		err := bus.Publish(context.Background(), Event{Type: BlightProgressed})
		assert.NoError(t, err)
	})

	t.Run("does not deliver to other types", func(t *testing.T) {
		bus := NewMemoryBus()
		called := false
		bus.Subscribe(WeatherUpdated, func(ctx context.Context, e Event) error {
			called = true
			return nil
		})

		err := bus.Publish(context.Background(), Event{Type: SantaMatchesCompleted})
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("collects handler errors without stopping later handlers", func(t *testing.T) {
		bus := NewMemoryBus()
		second := false
		bus.Subscribe(SantaMatchesCompleted, func(ctx context.Context, e Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(SantaMatchesCompleted, func(ctx context.Context, e Event) error {
			second = true
			return nil
		})

		err := bus.Publish(context.Background(), Event{Type: SantaMatchesCompleted})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		assert.True(t, second, "second handler should still run")
	})
}
