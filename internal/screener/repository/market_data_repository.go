package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/pkg/logger"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	// ErrNotFound means the upstream has no data for the requested symbol.
	ErrNotFound = errors.New("stock data not found")
	// ErrMalformedPayload means the upstream answered with a body that could not be decoded.
	ErrMalformedPayload = errors.New("malformed upstream payload")
	// ErrUpstream means the upstream answered with a non-OK status.
	ErrUpstream = errors.New("upstream request failed")
)

// MarketDataRepository reads quotes from the market-data API.
type MarketDataRepository interface {
	GetStocks(ctx context.Context) ([]entity.StockSummary, error)
	GetStock(ctx context.Context, symbol string) (*entity.Stock, error)
	GetStockRaw(ctx context.Context, symbol string) (json.RawMessage, error)
}

type marketDataRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewMarketDataRepository creates the HTTP client for the market-data API.
func NewMarketDataRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	limit := rate.Inf
	if cfg.MarketData.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.MarketData.MaxRequestPerMinute))
	}
	timeout := cfg.MarketData.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &marketDataRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		requestLimiter: rate.NewLimiter(limit, 1),
	}
}

func (r *marketDataRepository) GetStocks(ctx context.Context) ([]entity.StockSummary, error) {
	body, err := r.sendRequest(ctx, http.MethodGet, r.stocksURL(""))
	if err != nil {
		return nil, err
	}

	var response dto.StocksResponse
	if err := r.decode(ctx, body, &response); err != nil {
		return nil, err
	}

	stocks := make([]entity.StockSummary, 0, len(response.Data))
	for i, row := range response.Data {
		var stock entity.StockSummary
		if err := json.Unmarshal(row, &stock); err != nil {
			r.log.DebugContext(ctx, "Skipping malformed snapshot row", zap.Int("row", i), zap.Error(err))
			continue
		}
		stocks = append(stocks, stock)
	}
	return stocks, nil
}

func (r *marketDataRepository) GetStockRaw(ctx context.Context, symbol string) (json.RawMessage, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, ErrNotFound
	}

	body, err := r.sendRequest(ctx, http.MethodGet, r.stocksURL(symbol))
	if err != nil {
		return nil, err
	}

	var response dto.StockResponse
	if err := r.decode(ctx, body, &response); err != nil {
		return nil, err
	}
	data := bytes.TrimSpace(response.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("{}")) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	return json.RawMessage(data), nil
}

func (r *marketDataRepository) GetStock(ctx context.Context, symbol string) (*entity.Stock, error) {
	raw, err := r.GetStockRaw(ctx, symbol)
	if err != nil {
		return nil, err
	}

	var stock entity.Stock
	if err := r.decode(ctx, raw, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *marketDataRepository) stocksURL(symbol string) string {
	base := strings.TrimRight(r.cfg.MarketData.BaseURL, "/") + "/api/stocks"
	if symbol == "" {
		return base
	}
	return base + "/" + url.PathEscape(symbol)
}

// decode unmarshals body into v, retrying once on a repaired copy. Failures are
// logged at debug level only since upstream schema noise is expected.
func (r *marketDataRepository) decode(ctx context.Context, body []byte, v interface{}) error {
	err := json.Unmarshal(body, v)
	if err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(body))
	if repairErr == nil {
		if err = json.Unmarshal([]byte(repaired), v); err == nil {
			r.log.DebugContext(ctx, "Decoded repaired upstream payload")
			return nil
		}
	}

	r.log.DebugContext(ctx, "Discarding malformed upstream payload", zap.Error(err))
	return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
}

func (r *marketDataRepository) sendRequest(ctx context.Context, method string, endpoint string) ([]byte, error) {
	fields := []zap.Field{
		zap.String("url", endpoint),
		zap.Int("max_request_per_minute", r.cfg.MarketData.MaxRequestPerMinute),
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return nil, err
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if r.cfg.MarketData.UserAgent != "" {
		req.Header.Set("User-Agent", r.cfg.MarketData.UserAgent)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.WarnContext(ctx, "Failed to send request to market data API", fields...)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		r.log.WarnContext(ctx, "Received non-OK response from market data API", fields...)
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from market data API", fields...)
		return nil, err
	}

	return body, nil
}
