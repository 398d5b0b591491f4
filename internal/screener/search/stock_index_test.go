package search

import (
	"context"
	"errors"
	"testing"

	"idx-scalping-sniper/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listings = []entity.StockListing{
	{Code: "BBCA", Name: "Bank Central Asia Tbk."},
	{Code: "BBRI", Name: "Bank Rakyat Indonesia (Persero) Tbk."},
	{Code: "BMRI", Name: "Bank Mandiri (Persero) Tbk."},
	{Code: "TLKM", Name: "Telkom Indonesia (Persero) Tbk."},
	{Code: " ", Name: "blank row"},
}

func newTestIndex(t *testing.T) StockIndex {
	t.Helper()
	idx, err := NewStockIndex(listings)
	require.NoError(t, err)
	return idx
}

func codes(ls []entity.StockListing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.Code)
	}
	return out
}

func TestSearch(t *testing.T) {
	idx := newTestIndex(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"code prefix", "bb", []string{"BBCA", "BBRI"}},
		{"name word", "bank", []string{"BBCA", "BBRI", "BMRI"}},
		{"name fragment", "telk", []string{"TLKM"}},
		{"no match", "zzzz", []string{}},
		{"blank", "   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := idx.Search(tt.query, 0)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, codes(got))
		})
	}
}

func TestSearchExactCodeRanksFirst(t *testing.T) {
	got, err := newTestIndex(t).Search("bbri", 10)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "BBRI", got[0].Code)
	assert.Equal(t, "Bank Rakyat Indonesia (Persero) Tbk.", got[0].Name)
}

func TestSearchHonoursLimit(t *testing.T) {
	got, err := newTestIndex(t).Search("bank", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestResolve(t *testing.T) {
	idx := newTestIndex(t)

	tests := []struct {
		query  string
		want   string
		wantOK bool
	}{
		{" bmri ", "BMRI", true},
		{"central asia", "BBCA", true},
		{"Telkom", "TLKM", true},
		{"zzzz", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := idx.Resolve(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

type listingSource struct {
	listings []entity.StockListing
	err      error
}

func (s listingSource) GetListings(context.Context) ([]entity.StockListing, error) {
	return s.listings, s.err
}

func TestLoad(t *testing.T) {
	idx, err := Load(context.Background(), listingSource{listings: listings})
	require.NoError(t, err)
	code, ok := idx.Resolve("mandiri")
	assert.True(t, ok)
	assert.Equal(t, "BMRI", code)

	_, err = Load(context.Background(), listingSource{err: errors.New("missing file")})
	assert.Error(t, err)
}
