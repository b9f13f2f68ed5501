package worker

import (
	"context"
	"fmt"

	"github.com/rootsofthewild/rootsbot/internal/logger"
	"github.com/rootsofthewild/rootsbot/internal/weather"
)

// WeatherJob regenerates the daily in-world weather when the scheduler fires
type WeatherJob struct {
	service weather.Service
}

// NewWeatherJob creates a new WeatherJob
func NewWeatherJob(service weather.Service) *WeatherJob {
	return &WeatherJob{service: service}
}

// Process rolls fresh weather for the current day
func (j *WeatherJob) Process(ctx context.Context) error {
	w, err := j.service.Regenerate(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", LogMsgWeatherJobFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgWeatherJobRan,
		"season", string(w.Season),
		"condition", w.Condition,
		"temperature", w.Temperature)
	return nil
}
