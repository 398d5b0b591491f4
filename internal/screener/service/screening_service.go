package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/internal/screener/analysis"
	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/pkg/logger"
	"idx-scalping-sniper/pkg/result"
	"idx-scalping-sniper/pkg/utils"
)

// ErrNoData means the market snapshot could not be fetched or was empty.
var ErrNoData = errors.New("no stock data available")

// ScreeningService ranks momentum scalping candidates.
type ScreeningService interface {
	Screen(ctx context.Context) (*dto.ScreeningResult, error)
	Rank(ctx context.Context, stocks []entity.StockSummary) []entity.ScoredCandidate
}

// Option customizes a service.
type Option func(*options)

type options struct {
	now      func() time.Time
	resolver SymbolResolver
}

// WithClock replaces the wall clock, the hour of which drives time estimates.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithSymbolResolver lets lookups accept company names as well as codes.
func WithSymbolResolver(r SymbolResolver) Option {
	return func(o *options) { o.resolver = r }
}

func buildOptions(opts []Option) options {
	o := options{now: utils.TimeNowWIB}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type screeningService struct {
	cfg        config.Screening
	log        *logger.Logger
	marketData repository.MarketDataRepository
	now        func() time.Time
}

// NewScreeningService creates a new ScreeningService.
func NewScreeningService(cfg *config.Config, log *logger.Logger, marketData repository.MarketDataRepository, opts ...Option) ScreeningService {
	o := buildOptions(opts)
	return &screeningService{
		cfg:        cfg.Screening,
		log:        log,
		marketData: marketData,
		now:        o.now,
	}
}

// Screen fetches the snapshot and ranks it. Only a missing snapshot fails the run.
func (s *screeningService) Screen(ctx context.Context) (*dto.ScreeningResult, error) {
	stocks, err := s.marketData.GetStocks(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to fetch stock snapshot", logger.ErrorField(err))
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if len(stocks) == 0 {
		s.log.WarnContext(ctx, "Stock snapshot is empty")
		return nil, ErrNoData
	}

	runAt := s.now()
	candidates := s.Rank(ctx, stocks)

	s.log.InfoContext(ctx, "Screening finished",
		logger.IntField("scanned", len(stocks)),
		logger.IntField("candidates", len(candidates)))

	return &dto.ScreeningResult{
		Candidates: candidates,
		Scanned:    len(stocks),
		RunAt:      runAt,
	}, nil
}

// Rank filters, scores and sorts stocks by momentum score, highest first.
// Ties keep snapshot order.
func (s *screeningService) Rank(ctx context.Context, stocks []entity.StockSummary) []entity.ScoredCandidate {
	hour := s.now().Hour()

	symbols := make([]string, 0, len(stocks))
	outcomes := make([]result.Outcome[entity.ScoredCandidate], 0, len(stocks))
	for _, stock := range stocks {
		if !s.passesFilter(stock) {
			continue
		}
		symbols = append(symbols, stock.Symbol)
		outcomes = append(outcomes, s.evaluate(ctx, stock, hour))

		if err := utils.Sleep(ctx, s.cfg.DetailDelay); err != nil {
			s.log.WarnContext(ctx, "Screening interrupted", logger.ErrorField(err))
			break
		}
	}

	candidates := result.Collect(outcomes, func(i int, reason string) {
		s.log.DebugContext(ctx, "Skipping stock", logger.StringField("symbol", symbols[i]), logger.StringField("reason", reason))
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MomentumScore > candidates[j].MomentumScore
	})
	return candidates
}

func (s *screeningService) passesFilter(stock entity.StockSummary) bool {
	return stock.ChangePercent >= s.cfg.MinChangePercent &&
		stock.Volume >= s.cfg.MinVolume &&
		stock.Price <= s.cfg.MaxPrice &&
		stock.Price >= s.cfg.MinPrice
}

func (s *screeningService) evaluate(ctx context.Context, stock entity.StockSummary, hour int) result.Outcome[entity.ScoredCandidate] {
	detail, err := s.marketData.GetStock(ctx, stock.Symbol)
	if err != nil {
		return result.Skip[entity.ScoredCandidate]("detail unavailable: " + err.Error())
	}
	if detail.FullData == nil {
		return result.Skip[entity.ScoredCandidate]("detail has no fundamentals")
	}

	momentum := analysis.ScoreMomentum(stock, *detail.FullData)
	if momentum.Score < s.cfg.MinScore {
		return result.Skip[entity.ScoredCandidate](fmt.Sprintf("score %d below %d", momentum.Score, s.cfg.MinScore))
	}

	tp := stock.Price * (1 + s.cfg.TakeProfitPct/100)
	sl := stock.Price * (1 - s.cfg.StopLossPct/100)
	potentialProfit := tp - stock.Price

	return result.Ok(entity.ScoredCandidate{
		Symbol:          stock.Symbol,
		Name:            stock.Name,
		Price:           stock.Price,
		ChangePercent:   stock.ChangePercent,
		Volume:          stock.Volume,
		Entry:           stock.Price,
		TP:              utils.Fixed2(tp),
		SL:              utils.Fixed2(sl),
		DayHigh:         stock.DayHigh,
		DayLow:          stock.DayLow,
		MomentumScore:   momentum.Score,
		VolumeRatio:     utils.Round2(momentum.VolumeRatio),
		EstimatedTime:   analysis.EstimateTimeToTarget(momentum.Score, momentum.VolumeRatio, hour),
		PotentialProfit: potentialProfit,
		ProfitPercent:   potentialProfit / stock.Price * 100,
		Reasons:         momentum.Reasons,
	})
}
