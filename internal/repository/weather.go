package repository

import (
	"context"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// Weather defines the interface for weather persistence
type Weather interface {
	GetCurrent(ctx context.Context) (*domain.Weather, error)
	SaveCurrent(ctx context.Context, weather domain.Weather) error
}
