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
	"idx-scalping-sniper/pkg/utils"
)

// WarrantDigestStrategy lists active warrants and posts them.
type WarrantDigestStrategy struct {
	logger           *logger.Logger
	warrantService   service.WarrantService
	telegramNotifier telegram.Notifier
}

// NewWarrantDigestStrategy creates a new instance of WarrantDigestStrategy.
func NewWarrantDigestStrategy(logger *logger.Logger, warrantService service.WarrantService, telegramNotifier telegram.Notifier) *WarrantDigestStrategy {
	return &WarrantDigestStrategy{
		logger:           logger,
		warrantService:   warrantService,
		telegramNotifier: telegramNotifier,
	}
}

// GetType returns the job type this strategy handles.
func (s *WarrantDigestStrategy) GetType() string {
	return common.JobTypeWarrant
}

// Execute runs the warrant digest job. job.Top caps the number of listed warrants when positive.
func (s *WarrantDigestStrategy) Execute(ctx context.Context, job config.WatcherJob) (string, error) {
	pairings, err := s.warrantService.Screen(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to screen warrants: %w", err)
	}
	if job.Top > 0 && len(pairings) > job.Top {
		pairings = pairings[:job.Top]
	}

	messages := telegram.FormatWarrantDigest(pairings, utils.TimeNowWIB())
	if err := telegram.SendAll(s.telegramNotifier, messages); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send warrant digest", logger.ErrorField(err))
		return "", fmt.Errorf("failed to send warrant digest: %w", err)
	}

	out, err := json.Marshal(map[string]int{"warrants": len(pairings), "messages": len(messages)})
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(out), nil
}
