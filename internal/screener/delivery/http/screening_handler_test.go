package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/internal/screener/analysis"
	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/internal/screener/service"
	pkgconfig "idx-scalping-sniper/pkg/config"
	"idx-scalping-sniper/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreening struct {
	res *dto.ScreeningResult
	err error
}

func (f *fakeScreening) Screen(ctx context.Context) (*dto.ScreeningResult, error) { return f.res, f.err }

func (f *fakeScreening) Rank(ctx context.Context, stocks []entity.StockSummary) []entity.ScoredCandidate {
	return nil
}

type fakeAnalysis struct {
	analysis *dto.StockAnalysis
	raw      json.RawMessage
	err      error
	symbol   string
}

func (f *fakeAnalysis) Analyze(ctx context.Context, symbol string) (*dto.StockAnalysis, error) {
	f.symbol = symbol
	return f.analysis, f.err
}

func (f *fakeAnalysis) GetRaw(ctx context.Context, symbol string) (json.RawMessage, error) {
	f.symbol = symbol
	return f.raw, f.err
}

type fakeWarrants struct {
	pairings []entity.WarrantPairing
	err      error
}

func (f *fakeWarrants) Screen(ctx context.Context) ([]entity.WarrantPairing, error) {
	return f.pairings, f.err
}

func newTestServer(s service.ScreeningService, a service.AnalysisService, w service.WarrantService) *echo.Echo {
	e := echo.New()
	api := e.Group("/api")
	NewScreeningHandler(s, a, w, logger.NewNop()).RegisterRoutes(api)
	NewHealthHandler(pkgconfig.App{Name: "idx-scalping-sniper", Version: "3.0"}).RegisterRoutes(api)
	return e
}

func do(t *testing.T, e *echo.Echo, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetScreening(t *testing.T) {
	candidates := make([]entity.ScoredCandidate, 0, 12)
	for i := 0; i < 12; i++ {
		candidates = append(candidates, entity.ScoredCandidate{Symbol: fmt.Sprintf("S%02d", i), MomentumScore: 100 - i, Reasons: []string{}})
	}
	e := newTestServer(&fakeScreening{res: &dto.ScreeningResult{Candidates: candidates}}, &fakeAnalysis{}, &fakeWarrants{})

	rec := do(t, e, "/api/screening")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.ScreeningResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Top10, 10)
	assert.Len(t, body.Top5, 5)
	assert.Equal(t, "S00", body.Top5[0].Symbol)
	assert.Equal(t, "S09", body.Top10[9].Symbol)
}

func TestGetScreeningEmptyListsSerializeAsArrays(t *testing.T) {
	e := newTestServer(&fakeScreening{res: &dto.ScreeningResult{Candidates: []entity.ScoredCandidate{}}}, &fakeAnalysis{}, &fakeWarrants{})

	rec := do(t, e, "/api/screening")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"top10":[],"top5":[]}`, rec.Body.String())
}

func TestGetScreeningErrors(t *testing.T) {
	e := newTestServer(&fakeScreening{err: service.ErrNoData}, &fakeAnalysis{}, &fakeWarrants{})
	rec := do(t, e, "/api/screening")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"error":"No stock data"}`, rec.Body.String())

	e = newTestServer(&fakeScreening{err: errors.New("boom")}, &fakeAnalysis{}, &fakeWarrants{})
	rec = do(t, e, "/api/screening")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom"}`, rec.Body.String())
}

func TestGetAnalisa(t *testing.T) {
	a := &fakeAnalysis{raw: json.RawMessage(`{"symbol":"BBCA","price":9800,"fullData":{"trailingPE":24.1}}`)}
	e := newTestServer(&fakeScreening{}, a, &fakeWarrants{})

	rec := do(t, e, "/api/analisa/BBCA")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "BBCA", a.symbol)
	assert.JSONEq(t, `{"symbol":"BBCA","price":9800,"fullData":{"trailingPE":24.1}}`, rec.Body.String())
}

func TestGetAnalisaErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound, `{"error":"Data not found"}`},
		{"upstream", fmt.Errorf("%w: status 502", repository.ErrUpstream), http.StatusInternalServerError, `{"error":"upstream request failed: status 502"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(&fakeScreening{}, &fakeAnalysis{err: tt.err}, &fakeWarrants{})
			rec := do(t, e, "/api/analisa/XXXX")
			assert.Equal(t, tt.code, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestGetStrategy(t *testing.T) {
	a := &fakeAnalysis{analysis: &dto.StockAnalysis{
		Stock:         entity.Stock{StockSummary: entity.StockSummary{Symbol: "BBRI", Price: 100}},
		Strategy:      entity.StrategyResult{Entry: 100, TP1: 102, TP2: 104, SL: 97, Note: entity.SignalBearish},
		RiskReward:    0.67,
		HasRiskReward: true,
	}}
	e := newTestServer(&fakeScreening{}, a, &fakeWarrants{})

	rec := do(t, e, "/api/strategy/bbri")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.StockAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 97.0, body.Strategy.SL)
	assert.Equal(t, entity.SignalBearish, body.Strategy.Note)
}

func TestGetStrategyErrors(t *testing.T) {
	e := newTestServer(&fakeScreening{}, &fakeAnalysis{err: repository.ErrNotFound}, &fakeWarrants{})
	assert.Equal(t, http.StatusNotFound, do(t, e, "/api/strategy/XXXX").Code)

	e = newTestServer(&fakeScreening{}, &fakeAnalysis{err: analysis.ErrInvalidPrice}, &fakeWarrants{})
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, e, "/api/strategy/SUSP").Code)
}

func TestGetWarrants(t *testing.T) {
	w := &fakeWarrants{pairings: []entity.WarrantPairing{{Symbol: "BBCA-W", Price: 50, ParentPrice: 9800}}}
	e := newTestServer(&fakeScreening{}, &fakeAnalysis{}, w)

	rec := do(t, e, "/api/warrants")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"warrants":[{"symbol":"BBCA-W","price":50,"parentPrice":9800}],"total":1}`, rec.Body.String())

	e = newTestServer(&fakeScreening{}, &fakeAnalysis{}, &fakeWarrants{err: repository.ErrMissingCodeColumn})
	assert.Equal(t, http.StatusInternalServerError, do(t, e, "/api/warrants").Code)
}

func TestGetHealth(t *testing.T) {
	rec := do(t, newTestServer(&fakeScreening{}, &fakeAnalysis{}, &fakeWarrants{}), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","name":"idx-scalping-sniper","version":"3.0"}`, rec.Body.String())
}
