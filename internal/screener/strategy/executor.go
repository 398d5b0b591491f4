package strategy

import (
	"context"

	"idx-scalping-sniper/internal/screener/config"
)

// JobExecutionStrategy defines the interface for scheduled digest jobs.
type JobExecutionStrategy interface {
	Execute(ctx context.Context, job config.WatcherJob) (string, error)
	GetType() string
}
