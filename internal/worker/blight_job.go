package worker

import (
	"context"
	"fmt"

	"github.com/rootsofthewild/rootsbot/internal/blight"
	"github.com/rootsofthewild/rootsbot/internal/logger"
)

// BlightJob advances every infected character one progression tick
type BlightJob struct {
	service blight.Service
}

// NewBlightJob creates a new BlightJob
func NewBlightJob(service blight.Service) *BlightJob {
	return &BlightJob{service: service}
}

// Process runs the daily blight progression
func (j *BlightJob) Process(ctx context.Context) error {
	if err := j.service.ProgressAll(ctx); err != nil {
		return fmt.Errorf("%s: %w", LogMsgBlightJobFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgBlightJobRan)
	return nil
}
