package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"idx-scalping-sniper/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockCodeRepositoryGetCodes(t *testing.T) {
	content := "\uFEFFNo,Code,Name\n1,BBCA,Bank Central Asia Tbk.\n2, BBRI ,Bank Rakyat Indonesia\n3,,Blank\n4,TLKM,Telkom Indonesia\n"
	path := filepath.Join(t.TempDir(), "stockcode.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	codes, err := NewStockCodeRepository(path).GetCodes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"BBCA", "BBRI", "TLKM"}, codes)
}

func TestStockCodeRepositoryMissingFile(t *testing.T) {
	_, err := NewStockCodeRepository(filepath.Join(t.TempDir(), "nope.csv")).GetCodes(context.Background())
	assert.Error(t, err)
}

func TestParseStockCodesWithoutCodeColumn(t *testing.T) {
	_, err := ParseStockCodes(strings.NewReader("Symbol,Name\nBBCA,Bank\n"))
	assert.ErrorIs(t, err, ErrMissingCodeColumn)

	_, err = ParseStockCodes(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMissingCodeColumn)
}

func TestParseStockCodesShortRows(t *testing.T) {
	codes, err := ParseStockCodes(strings.NewReader("Name,Code\nonly-name\nAsia,ASII\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ASII"}, codes)
}

func TestParseStockListings(t *testing.T) {
	listings, err := ParseStockListings(strings.NewReader("No,Code,Name\n1,BBCA,Bank Central Asia Tbk.\n2, ,Blank\n3,TLKM\n"))
	require.NoError(t, err)
	assert.Equal(t, []entity.StockListing{
		{Code: "BBCA", Name: "Bank Central Asia Tbk."},
		{Code: "TLKM"},
	}, listings)
}
