package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/strategy"
	"idx-scalping-sniper/pkg/logger"
	"idx-scalping-sniper/pkg/telegram"
	"idx-scalping-sniper/pkg/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// Watcher runs digest jobs on their cron schedules.
type Watcher struct {
	cfg        config.Watcher
	logger     *logger.Logger
	notifier   telegram.Notifier
	strategies map[string]strategy.JobExecutionStrategy
	cron       *cron.Cron
	mu         sync.Mutex
	running    map[string]bool
}

// NewWatcher creates a Watcher. Jobs whose type has no strategy are rejected at Start.
func NewWatcher(cfg *config.Config, log *logger.Logger, notifier telegram.Notifier, strategies []strategy.JobExecutionStrategy) *Watcher {
	strategyMap := make(map[string]strategy.JobExecutionStrategy)
	for _, s := range strategies {
		strategyMap[s.GetType()] = s
	}

	loc := utils.JakartaLocation()
	if cfg.Watcher.Timezone != "" {
		if l, err := time.LoadLocation(cfg.Watcher.Timezone); err == nil {
			loc = l
		} else {
			log.Warn("Unknown watcher timezone, using WIB", logger.StringField("timezone", cfg.Watcher.Timezone))
		}
	}

	return &Watcher{
		cfg:        cfg.Watcher,
		logger:     log,
		notifier:   notifier,
		strategies: strategyMap,
		cron:       cron.New(cron.WithLocation(loc)),
		running:    make(map[string]bool),
	}
}

// Start registers every configured job and starts the cron loop.
func (w *Watcher) Start(ctx context.Context) error {
	for _, job := range w.cfg.Jobs {
		if _, ok := w.strategies[job.Type]; !ok {
			return fmt.Errorf("unknown watcher job type %q", job.Type)
		}
		if _, err := w.cron.AddFunc(job.Cron, func() { w.RunJob(ctx, job) }); err != nil {
			return fmt.Errorf("invalid cron %q for job %s: %w", job.Cron, job.Type, err)
		}
		w.logger.Info("Registered watcher job", logger.StringField("type", job.Type), logger.StringField("cron", job.Cron))
	}
	w.cron.Start()
	w.logger.Info("Watcher started", logger.IntField("jobs", len(w.cfg.Jobs)))
	return nil
}

// RunJob executes one job now. A job still running from its previous tick is skipped.
func (w *Watcher) RunJob(ctx context.Context, job config.WatcherJob) {
	s, ok := w.strategies[job.Type]
	if !ok {
		w.logger.Error("No strategy for job", logger.StringField("type", job.Type))
		return
	}
	if !w.acquire(job.Type) {
		w.logger.Warn("Previous run still in progress, skipping", logger.StringField("type", job.Type))
		return
	}
	defer w.release(job.Type)

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, logger.RequestIDKey, runID)
	if w.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.Execute(ctx, job)
	if err != nil {
		w.logger.ErrorContext(ctx, "Watcher job failed", logger.StringField("type", job.Type), logger.ErrorField(err))
		alert := telegram.FormatErrorAlertMessage(utils.TimeNowWIB(), job.Type, err.Error(), runID)
		if sendErr := w.notifier.SendMessage(alert); sendErr != nil {
			w.logger.ErrorContext(ctx, "Failed to send error alert", logger.ErrorField(sendErr))
		}
		return
	}
	w.logger.InfoContext(ctx, "Watcher job finished",
		logger.StringField("type", job.Type),
		logger.StringField("result", out),
		logger.Field("duration", time.Since(start)))
}

func (w *Watcher) acquire(jobType string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running[jobType] {
		return false
	}
	w.running[jobType] = true
	return true
}

func (w *Watcher) release(jobType string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.running, jobType)
}

// Stop waits for running jobs to finish.
func (w *Watcher) Stop() {
	<-w.cron.Stop().Done()
	w.logger.Info("Watcher stopped")
}
