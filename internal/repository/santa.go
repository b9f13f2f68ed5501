package repository

import (
	"context"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// Santa defines the interface for gift exchange persistence
type Santa interface {
	UpsertParticipant(ctx context.Context, p domain.Participant) error
	GetParticipant(ctx context.Context, id string) (*domain.Participant, error)
	ListParticipants(ctx context.Context) ([]domain.Participant, error)
	DeleteParticipant(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (*domain.ExchangeSettings, error)
	SaveSettings(ctx context.Context, settings domain.ExchangeSettings) error

	// ReplaceMatches atomically replaces all stored matches with the given
	// set; one matching run's output entirely supersedes the previous run's.
	ReplaceMatches(ctx context.Context, matches []domain.Match) error
	ListMatches(ctx context.Context) ([]domain.Match, error)
	GetMatchBySender(ctx context.Context, senderID string) (*domain.Match, error)
}
