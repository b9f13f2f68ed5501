package blight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootsofthewild/rootsbot/internal/domain"
	"github.com/rootsofthewild/rootsbot/internal/event"
)

type fakeBlightRepo struct {
	records map[string]domain.BlightRecord
}

func newFakeBlightRepo() *fakeBlightRepo {
	return &fakeBlightRepo{records: make(map[string]domain.BlightRecord)}
}

func (f *fakeBlightRepo) UpsertRecord(ctx context.Context, r domain.BlightRecord) error {
	f.records[r.CharacterID] = r
	return nil
}

func (f *fakeBlightRepo) GetRecord(ctx context.Context, characterID string) (*domain.BlightRecord, error) {
	r, ok := f.records[characterID]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (f *fakeBlightRepo) ListRecordsByOwner(ctx context.Context, ownerID string) ([]domain.BlightRecord, error) {
	var out []domain.BlightRecord
	for _, r := range f.records {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeBlightRepo) ListInfected(ctx context.Context) ([]domain.BlightRecord, error) {
	var out []domain.BlightRecord
	for _, r := range f.records {
		if r.Stage.Infected() {
			out = append(out, r)
		}
	}
	return out, nil
}

// fixedRoll pins every d100 roll to n (0..99)
func fixedRoll(n int) Option {
	return WithRollFunc(func() int { return n })
}

func TestServiceRegisterAndInfect(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBlightRepo()
	svc := NewService(repo, event.NewMemoryBus())

	require.NoError(t, svc.Register(ctx, "c1", "u1", "Fen"))

	records, err := svc.Status(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.BlightHealthy, records[0].Stage)

	require.NoError(t, svc.Infect(ctx, "c1"))
	records, _ = svc.Status(ctx, "u1")
	assert.Equal(t, domain.BlightStage1, records[0].Stage)
	assert.NotNil(t, records[0].InfectedAt)

	err = svc.Infect(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrAlreadyInfected)

	assert.ErrorIs(t, svc.Register(ctx, "", "u1", "Fen"), domain.ErrInvalidInput)
	assert.ErrorIs(t, svc.Infect(ctx, "ghost"), domain.ErrCharacterNotFound)
}

func TestServiceInfectDeadCharacter(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBlightRepo()
	repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightDead}
	svc := NewService(repo, event.NewMemoryBus())

	assert.ErrorIs(t, svc.Infect(ctx, "c1"), domain.ErrCharacterDead)
}

func TestServiceHeal(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects healthy characters", func(t *testing.T) {
		repo := newFakeBlightRepo()
		svc := NewService(repo, event.NewMemoryBus())
		require.NoError(t, svc.Register(ctx, "c1", "u1", "Fen"))

		_, err := svc.Heal(ctx, "c1")
		assert.ErrorIs(t, err, domain.ErrNotInfected)
	})

	t.Run("successful roll steps back a stage", func(t *testing.T) {
		repo := newFakeBlightRepo()
		repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightStage2}
		svc := NewService(repo, event.NewMemoryBus(), fixedRoll(HealSuccessThreshold))

		outcome, err := svc.Heal(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, outcome.Succeeded)
		assert.Equal(t, domain.BlightStage1, outcome.Stage)
		assert.Equal(t, domain.BlightStage1, repo.records["c1"].Stage)
	})

	t.Run("stage 1 heals to recovered", func(t *testing.T) {
		repo := newFakeBlightRepo()
		repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightStage1}
		svc := NewService(repo, event.NewMemoryBus(), fixedRoll(99))

		outcome, err := svc.Heal(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, outcome.Succeeded)
		assert.Equal(t, domain.BlightRecovered, repo.records["c1"].Stage)
	})

	t.Run("failed roll changes nothing", func(t *testing.T) {
		repo := newFakeBlightRepo()
		repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightStage2}
		svc := NewService(repo, event.NewMemoryBus(), fixedRoll(1))

		outcome, err := svc.Heal(ctx, "c1")
		require.NoError(t, err)
		assert.False(t, outcome.Succeeded)
		assert.Equal(t, domain.BlightStage2, repo.records["c1"].Stage)
	})
}

func TestServiceProgressAll(t *testing.T) {
	ctx := context.Background()

	t.Run("worsening past stage 3 is fatal", func(t *testing.T) {
		repo := newFakeBlightRepo()
		repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightStage3}
		// Roll lands in the worsen band (RecoverChance <= roll < RecoverChance+WorsenChance).
		svc := NewService(repo, event.NewMemoryBus(), fixedRoll(RecoverChance))

		require.NoError(t, svc.ProgressAll(ctx))
		assert.Equal(t, domain.BlightDead, repo.records["c1"].Stage)
	})

	t.Run("low roll recovers spontaneously", func(t *testing.T) {
		repo := newFakeBlightRepo()
		repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightStage2}
		svc := NewService(repo, event.NewMemoryBus(), fixedRoll(0))

		require.NoError(t, svc.ProgressAll(ctx))
		assert.Equal(t, domain.BlightRecovered, repo.records["c1"].Stage)
	})

	t.Run("high roll leaves the stage alone", func(t *testing.T) {
		repo := newFakeBlightRepo()
		repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightStage2}
		svc := NewService(repo, event.NewMemoryBus(), fixedRoll(99))

		require.NoError(t, svc.ProgressAll(ctx))
		assert.Equal(t, domain.BlightStage2, repo.records["c1"].Stage)
	})

	t.Run("publishes progression event", func(t *testing.T) {
		repo := newFakeBlightRepo()
		repo.records["c1"] = domain.BlightRecord{CharacterID: "c1", OwnerID: "u1", Name: "Fen", Stage: domain.BlightStage1}
		bus := event.NewMemoryBus()
		var received []event.Event
		bus.Subscribe(event.BlightProgressed, func(ctx context.Context, e event.Event) error {
			received = append(received, e)
			return nil
		})

		svc := NewService(repo, bus, fixedRoll(RecoverChance))
		require.NoError(t, svc.ProgressAll(ctx))

		require.Len(t, received, 1)
		payload, ok := received[0].Payload.(event.BlightProgressedPayloadV1)
		require.True(t, ok)
		assert.Equal(t, 1, payload.Worsened)
	})
}
