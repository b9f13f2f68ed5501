package santa

import (
	"context"
	"sync"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// fakeRepo is an in-memory repository.Santa for service tests
type fakeRepo struct {
	mu           sync.Mutex
	participants map[string]domain.Participant
	settings     domain.ExchangeSettings
	matches      []domain.Match
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		participants: make(map[string]domain.Participant),
		settings:     domain.ExchangeSettings{SignupsOpen: true},
	}
}

func (f *fakeRepo) UpsertParticipant(ctx context.Context, p domain.Participant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.participants[p.ID] = p
	return nil
}

func (f *fakeRepo) GetParticipant(ctx context.Context, id string) (*domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.participants[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeRepo) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Participant, 0, len(f.participants))
	for _, p := range f.participants {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) DeleteParticipant(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.participants, id)
	return nil
}

func (f *fakeRepo) GetSettings(ctx context.Context) (*domain.ExchangeSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	settings := f.settings
	return &settings, nil
}

func (f *fakeRepo) SaveSettings(ctx context.Context, settings domain.ExchangeSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings = settings
	return nil
}

func (f *fakeRepo) ReplaceMatches(ctx context.Context, matches []domain.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.matches = append([]domain.Match(nil), matches...)
	return nil
}

func (f *fakeRepo) ListMatches(ctx context.Context) ([]domain.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Match(nil), f.matches...), nil
}

func (f *fakeRepo) GetMatchBySender(ctx context.Context, senderID string) (*domain.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.matches {
		if m.SenderID == senderID {
			match := m
			return &match, nil
		}
	}
	return nil, nil
}
