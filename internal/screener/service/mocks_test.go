package service

import (
	"context"
	"encoding/json"

	"idx-scalping-sniper/internal/entity"

	"github.com/stretchr/testify/mock"
)

type mockMarketData struct {
	mock.Mock
}

func (m *mockMarketData) GetStocks(ctx context.Context) ([]entity.StockSummary, error) {
	args := m.Called(ctx)
	stocks, _ := args.Get(0).([]entity.StockSummary)
	return stocks, args.Error(1)
}

func (m *mockMarketData) GetStock(ctx context.Context, symbol string) (*entity.Stock, error) {
	args := m.Called(ctx, symbol)
	stock, _ := args.Get(0).(*entity.Stock)
	return stock, args.Error(1)
}

func (m *mockMarketData) GetStockRaw(ctx context.Context, symbol string) (json.RawMessage, error) {
	args := m.Called(ctx, symbol)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

type mockStockCodes struct {
	mock.Mock
}

func (m *mockStockCodes) GetCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	codes, _ := args.Get(0).([]string)
	return codes, args.Error(1)
}

func (m *mockStockCodes) GetListings(ctx context.Context) ([]entity.StockListing, error) {
	args := m.Called(ctx)
	listings, _ := args.Get(0).([]entity.StockListing)
	return listings, args.Error(1)
}

type stubResolver map[string]string

func (r stubResolver) Resolve(query string) (string, bool) {
	code, ok := r[query]
	return code, ok
}

func detailed(summary entity.StockSummary, detail entity.StockDetail) *entity.Stock {
	return &entity.Stock{StockSummary: summary, FullData: &detail}
}
