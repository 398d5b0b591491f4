package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/pkg/common"
	"idx-scalping-sniper/pkg/logger"
	"idx-scalping-sniper/pkg/result"
	"idx-scalping-sniper/pkg/utils"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// WarrantService pairs active warrants with their parent stock price.
type WarrantService interface {
	Screen(ctx context.Context) ([]entity.WarrantPairing, error)
}

type warrantService struct {
	cfg        config.Warrant
	log        *logger.Logger
	marketData repository.MarketDataRepository
	codes      repository.StockCodeRepository
}

// NewWarrantService creates a new WarrantService.
func NewWarrantService(cfg *config.Config, log *logger.Logger, marketData repository.MarketDataRepository, codes repository.StockCodeRepository) WarrantService {
	wc := cfg.Warrant
	if wc.Suffix == "" {
		wc.Suffix = common.DefaultWarrantSuffix
	}
	if wc.BatchSize <= 0 {
		wc.BatchSize = 1
	}
	return &warrantService{
		cfg:        wc,
		log:        log,
		marketData: marketData,
		codes:      codes,
	}
}

// WarrantSymbols derives the warrant ticker of every stock code.
func WarrantSymbols(codes []string, suffix string) []string {
	symbols := make([]string, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		symbols = append(symbols, code+suffix)
	}
	return symbols
}

// ParentSymbol strips the warrant suffix from a warrant ticker, ignoring case.
// The second result is false when the ticker carries no suffix.
func ParentSymbol(warrant, suffix string) (string, bool) {
	if suffix == "" {
		return "", false
	}
	idx := strings.LastIndex(strings.ToUpper(warrant), strings.ToUpper(suffix))
	if idx <= 0 {
		return "", false
	}
	return strings.ToUpper(warrant[:idx] + warrant[idx+len(suffix):]), true
}

// Screen lists warrants that traded today with their parent's last price, sorted by symbol.
func (s *warrantService) Screen(ctx context.Context) ([]entity.WarrantPairing, error) {
	codes, err := s.codes.GetCodes(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load stock codes", logger.ErrorField(err))
		return nil, err
	}

	quotes, err := s.activeWarrants(ctx, WarrantSymbols(codes, s.cfg.Suffix))
	if err != nil {
		return nil, err
	}

	pairings := s.pairWithParents(ctx, quotes)
	sort.Slice(pairings, func(i, j int) bool {
		return pairings[i].Symbol < pairings[j].Symbol
	})

	s.log.InfoContext(ctx, "Warrant screening finished",
		logger.IntField("candidates", len(codes)),
		logger.IntField("active", len(quotes)),
		logger.IntField("paired", len(pairings)))
	return pairings, nil
}

// activeWarrants fetches quotes in concurrent batches and keeps those with price and volume.
func (s *warrantService) activeWarrants(ctx context.Context, symbols []string) ([]entity.StockSummary, error) {
	active := make([]entity.StockSummary, 0)
	for start := 0; start < len(symbols); start += s.cfg.BatchSize {
		end := min(start+s.cfg.BatchSize, len(symbols))
		batch := symbols[start:end]
		quotes := make([]*entity.Stock, len(batch))

		g, gctx := errgroup.WithContext(ctx)
		for i, symbol := range batch {
			g.Go(func() error {
				stock, err := s.marketData.GetStock(gctx, strings.ToLower(symbol))
				if err != nil {
					if !errors.Is(err, repository.ErrNotFound) {
						s.log.DebugContext(ctx, "Warrant quote unavailable", logger.StringField("symbol", symbol), logger.ErrorField(err))
					}
					return nil
				}
				if stock.Symbol == "" {
					stock.Symbol = strings.ToUpper(symbol)
				}
				quotes[i] = stock
				return nil
			})
		}
		_ = g.Wait()

		for _, q := range quotes {
			if q != nil && q.Price > 0 && q.Volume > 0 {
				active = append(active, q.StockSummary)
			}
		}

		if end < len(symbols) {
			if err := utils.Sleep(ctx, s.cfg.BatchDelay); err != nil {
				return nil, err
			}
		}
	}
	return active, nil
}

// parentQuote is a memoized parent lookup. ok is false when the lookup failed.
type parentQuote struct {
	price float64
	ok    bool
}

// pairWithParents looks parents up one at a time, memoizing lookups for the run.
func (s *warrantService) pairWithParents(ctx context.Context, warrants []entity.StockSummary) []entity.WarrantPairing {
	memo := cache.New(cache.NoExpiration, 0)
	outcomes := make([]result.Outcome[entity.WarrantPairing], 0, len(warrants))

	for i, w := range warrants {
		if ctx.Err() != nil {
			break
		}
		parent, ok := ParentSymbol(w.Symbol, s.cfg.Suffix)
		if !ok {
			outcomes = append(outcomes, result.Skip[entity.WarrantPairing]("no warrant suffix"))
			continue
		}

		var quote parentQuote
		if cached, found := memo.Get(parent); found {
			quote = cached.(parentQuote)
		} else {
			stock, err := s.marketData.GetStock(ctx, parent)
			if err == nil && stock != nil {
				quote = parentQuote{price: stock.Price, ok: true}
			}
			memo.Set(parent, quote, cache.NoExpiration)

			if i < len(warrants)-1 {
				_ = utils.Sleep(ctx, s.cfg.ParentDelay)
			}
		}

		if !quote.ok {
			outcomes = append(outcomes, result.Skip[entity.WarrantPairing]("parent "+parent+" lookup failed"))
			continue
		}
		outcomes = append(outcomes, result.Ok(entity.WarrantPairing{
			Symbol:      strings.ToUpper(w.Symbol),
			Price:       w.Price,
			ParentPrice: quote.price,
		}))
	}

	return result.Collect(outcomes, func(i int, reason string) {
		s.log.DebugContext(ctx, "Skipping warrant", logger.StringField("symbol", warrants[i].Symbol), logger.StringField("reason", reason))
	})
}
