package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"idx-scalping-sniper/internal/entity"
)

// ErrMissingCodeColumn is returned when the stock code file has no "Code" header.
var ErrMissingCodeColumn = errors.New("stock code file has no Code column")

// StockCodeRepository lists the exchange stock codes.
type StockCodeRepository interface {
	GetCodes(ctx context.Context) ([]string, error)
	GetListings(ctx context.Context) ([]entity.StockListing, error)
}

type stockCodeRepository struct {
	path string
}

// NewStockCodeRepository reads codes from a CSV file with a "Code" column.
func NewStockCodeRepository(path string) StockCodeRepository {
	return &stockCodeRepository{path: path}
}

func (r *stockCodeRepository) GetCodes(ctx context.Context) ([]string, error) {
	listings, err := r.GetListings(ctx)
	if err != nil {
		return nil, err
	}
	return listingCodes(listings), nil
}

func (r *stockCodeRepository) GetListings(ctx context.Context) ([]entity.StockListing, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stock code file: %w", err)
	}
	defer f.Close()

	return ParseStockListings(f)
}

// ParseStockCodes reads the "Code" column of a CSV stream, skipping blank values.
func ParseStockCodes(in io.Reader) ([]string, error) {
	listings, err := ParseStockListings(in)
	if err != nil {
		return nil, err
	}
	return listingCodes(listings), nil
}

// ParseStockListings reads the "Code" and, when present, "Name" columns of a CSV stream.
func ParseStockListings(in io.Reader) ([]entity.StockListing, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingCodeColumn
		}
		return nil, fmt.Errorf("failed to read stock code header: %w", err)
	}

	codeCol, nameCol := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")) {
		case "Code":
			if codeCol < 0 {
				codeCol = i
			}
		case "Name":
			if nameCol < 0 {
				nameCol = i
			}
		}
	}
	if codeCol < 0 {
		return nil, ErrMissingCodeColumn
	}

	var listings []entity.StockListing
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read stock code record: %w", err)
		}
		if codeCol >= len(record) {
			continue
		}
		code := strings.TrimSpace(record[codeCol])
		if code == "" {
			continue
		}
		listing := entity.StockListing{Code: code}
		if nameCol >= 0 && nameCol < len(record) {
			listing.Name = strings.TrimSpace(record[nameCol])
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func listingCodes(listings []entity.StockListing) []string {
	codes := make([]string, 0, len(listings))
	for _, l := range listings {
		codes = append(codes, l.Code)
	}
	return codes
}
