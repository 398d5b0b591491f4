package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/service"
	"idx-scalping-sniper/pkg/common"
	"idx-scalping-sniper/pkg/logger"
	"idx-scalping-sniper/pkg/telegram"
)

// ScreeningDigestStrategy runs a screening and posts the top candidates.
type ScreeningDigestStrategy struct {
	logger           *logger.Logger
	screeningService service.ScreeningService
	telegramNotifier telegram.Notifier
}

// NewScreeningDigestStrategy creates a new instance of ScreeningDigestStrategy.
func NewScreeningDigestStrategy(logger *logger.Logger, screeningService service.ScreeningService, telegramNotifier telegram.Notifier) *ScreeningDigestStrategy {
	return &ScreeningDigestStrategy{
		logger:           logger,
		screeningService: screeningService,
		telegramNotifier: telegramNotifier,
	}
}

// GetType returns the job type this strategy handles.
func (s *ScreeningDigestStrategy) GetType() string {
	return common.JobTypeScreening
}

// ScreeningDigestResult summarizes one digest run.
type ScreeningDigestResult struct {
	Scanned    int      `json:"scanned"`
	Candidates int      `json:"candidates"`
	Sent       []string `json:"sent"`
}

// Execute runs the screening digest job.
func (s *ScreeningDigestStrategy) Execute(ctx context.Context, job config.WatcherJob) (string, error) {
	top := job.Top
	if top <= 0 {
		top = common.TopRecommendSize
	}

	res, err := s.screeningService.Screen(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to run screening: %w", err)
	}

	candidates := res.Top(top)
	msg := telegram.FormatScreeningDigest(candidates, res.Scanned, res.RunAt)
	if err := s.telegramNotifier.SendMessage(msg); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send screening digest", logger.ErrorField(err))
		return "", fmt.Errorf("failed to send screening digest: %w", err)
	}

	sent := make([]string, 0, len(candidates))
	for _, c := range candidates {
		sent = append(sent, c.Symbol)
	}
	out, err := json.Marshal(ScreeningDigestResult{
		Scanned:    res.Scanned,
		Candidates: len(res.Candidates),
		Sent:       sent,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(out), nil
}
