package strategy

import (
	"context"
	"errors"
	"testing"
	"time"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/internal/screener/config"
	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/internal/screener/service"
	"idx-scalping-sniper/pkg/common"
	"idx-scalping-sniper/pkg/logger"

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

type fakeWarrants struct {
	pairings []entity.WarrantPairing
	err      error
}

func (f *fakeWarrants) Screen(ctx context.Context) ([]entity.WarrantPairing, error) {
	return f.pairings, f.err
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) SendMessage(text string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, text)
	return nil
}

func candidates(symbols ...string) []entity.ScoredCandidate {
	out := make([]entity.ScoredCandidate, 0, len(symbols))
	for i, s := range symbols {
		out = append(out, entity.ScoredCandidate{Symbol: s, MomentumScore: 90 - i})
	}
	return out
}

func TestScreeningDigestStrategy(t *testing.T) {
	screening := &fakeScreening{res: &dto.ScreeningResult{
		Candidates: candidates("ANTM", "MDKA", "DEWA", "BRMS", "ELSA", "PTRO", "INCO"),
		Scanned:    812,
		RunAt:      time.Date(2026, 10, 16, 9, 5, 0, 0, time.UTC),
	}}
	notifier := &fakeNotifier{}
	s := NewScreeningDigestStrategy(logger.NewNop(), screening, notifier)
	assert.Equal(t, common.JobTypeScreening, s.GetType())

	out, err := s.Execute(context.Background(), config.WatcherJob{Type: common.JobTypeScreening, Top: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scanned":812,"candidates":7,"sent":["ANTM","MDKA","DEWA"]}`, out)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "*DEWA*")
	assert.NotContains(t, notifier.messages[0], "*BRMS*")

	out, err = s.Execute(context.Background(), config.WatcherJob{Type: common.JobTypeScreening})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scanned":812,"candidates":7,"sent":["ANTM","MDKA","DEWA","BRMS","ELSA"]}`, out)
}

func TestScreeningDigestStrategyErrors(t *testing.T) {
	s := NewScreeningDigestStrategy(logger.NewNop(), &fakeScreening{err: service.ErrNoData}, &fakeNotifier{})
	_, err := s.Execute(context.Background(), config.WatcherJob{})
	assert.ErrorIs(t, err, service.ErrNoData)

	sendErr := errors.New("bot blocked")
	s = NewScreeningDigestStrategy(logger.NewNop(), &fakeScreening{res: &dto.ScreeningResult{}}, &fakeNotifier{err: sendErr})
	_, err = s.Execute(context.Background(), config.WatcherJob{})
	assert.ErrorIs(t, err, sendErr)
}

func TestWarrantDigestStrategy(t *testing.T) {
	warrants := &fakeWarrants{pairings: []entity.WarrantPairing{
		{Symbol: "ADRO-W", Price: 10, ParentPrice: 2500},
		{Symbol: "BBCA-W", Price: 50, ParentPrice: 9800},
		{Symbol: "TLKM-W", Price: 20, ParentPrice: 3000},
	}}
	notifier := &fakeNotifier{}
	s := NewWarrantDigestStrategy(logger.NewNop(), warrants, notifier)
	assert.Equal(t, common.JobTypeWarrant, s.GetType())

	out, err := s.Execute(context.Background(), config.WatcherJob{Top: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"warrants":2,"messages":1}`, out)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "BBCA-W")
	assert.NotContains(t, notifier.messages[0], "TLKM-W")
}

func TestWarrantDigestStrategyError(t *testing.T) {
	codeErr := errors.New("stock code file missing")
	s := NewWarrantDigestStrategy(logger.NewNop(), &fakeWarrants{err: codeErr}, &fakeNotifier{})
	_, err := s.Execute(context.Background(), config.WatcherJob{})
	assert.ErrorIs(t, err, codeErr)
}
