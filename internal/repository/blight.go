package repository

import (
	"context"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// Blight defines the interface for blight record persistence
type Blight interface {
	UpsertRecord(ctx context.Context, record domain.BlightRecord) error
	GetRecord(ctx context.Context, characterID string) (*domain.BlightRecord, error)
	ListRecordsByOwner(ctx context.Context, ownerID string) ([]domain.BlightRecord, error)
	ListInfected(ctx context.Context) ([]domain.BlightRecord, error)
}
