package service

import (
	"context"
	"encoding/json"
	"strings"

	"idx-scalping-sniper/internal/screener/analysis"
	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/pkg/logger"
)

// AnalysisService looks up a single stock and derives its trade plan.
type AnalysisService interface {
	Analyze(ctx context.Context, symbol string) (*dto.StockAnalysis, error)
	GetRaw(ctx context.Context, symbol string) (json.RawMessage, error)
}

// SymbolResolver maps free text to a listed stock code.
type SymbolResolver interface {
	Resolve(query string) (string, bool)
}

type analysisService struct {
	log        *logger.Logger
	marketData repository.MarketDataRepository
	resolver   SymbolResolver
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(log *logger.Logger, marketData repository.MarketDataRepository, opts ...Option) AnalysisService {
	o := buildOptions(opts)
	return &analysisService{log: log, marketData: marketData, resolver: o.resolver}
}

// NormalizeSymbol trims and upper-cases a user supplied ticker.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// resolve returns the listed code for a query, or the normalized query itself.
func (s *analysisService) resolve(ctx context.Context, query string) string {
	symbol := NormalizeSymbol(query)
	if s.resolver == nil || symbol == "" {
		return symbol
	}
	code, ok := s.resolver.Resolve(query)
	if !ok {
		return symbol
	}
	if code != symbol {
		s.log.DebugContext(ctx, "Resolved stock name", logger.StringField("query", query), logger.StringField("symbol", code))
	}
	return code
}

func (s *analysisService) Analyze(ctx context.Context, symbol string) (*dto.StockAnalysis, error) {
	symbol = s.resolve(ctx, symbol)
	stock, err := s.marketData.GetStock(ctx, symbol)
	if err != nil {
		s.log.DebugContext(ctx, "Failed to get stock for analysis", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, err
	}

	strategy, err := analysis.CalculateStrategy(analysis.StrategyInputFromStock(*stock))
	if err != nil {
		s.log.WarnContext(ctx, "Cannot build strategy", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, err
	}
	rr, ok := analysis.RiskReward(strategy)

	return &dto.StockAnalysis{
		Stock:         *stock,
		Strategy:      strategy,
		RiskReward:    rr,
		HasRiskReward: ok,
	}, nil
}

func (s *analysisService) GetRaw(ctx context.Context, symbol string) (json.RawMessage, error) {
	return s.marketData.GetStockRaw(ctx, s.resolve(ctx, symbol))
}
