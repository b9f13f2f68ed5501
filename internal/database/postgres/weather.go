package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rootsofthewild/rootsbot/internal/domain"
)

// WeatherRepository implements repository.Weather
type WeatherRepository struct {
	db *pgxpool.Pool
}

// NewWeatherRepository creates a new weather repository
func NewWeatherRepository(db *pgxpool.Pool) *WeatherRepository {
	return &WeatherRepository{db: db}
}

// GetCurrent returns the current day's weather, or nil before the first roll
func (r *WeatherRepository) GetCurrent(ctx context.Context) (*domain.Weather, error) {
	query := `
		SELECT season, condition, temperature, special, generated_at
		FROM weather_days
		WHERE singleton = 1
	`
	var w domain.Weather
	err := r.db.QueryRow(ctx, query).Scan(&w.Season, &w.Condition, &w.Temperature, &w.Special, &w.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetWeather, err)
	}
	return &w, nil
}

// SaveCurrent replaces the current day's weather
func (r *WeatherRepository) SaveCurrent(ctx context.Context, weather domain.Weather) error {
	query := `
		INSERT INTO weather_days (singleton, season, condition, temperature, special, generated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (singleton) DO UPDATE
		SET season = EXCLUDED.season,
		    condition = EXCLUDED.condition,
		    temperature = EXCLUDED.temperature,
		    special = EXCLUDED.special,
		    generated_at = EXCLUDED.generated_at
	`
	_, err := r.db.Exec(ctx, query, weather.Season, weather.Condition, weather.Temperature, weather.Special, weather.GeneratedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveWeather, err)
	}
	return nil
}
