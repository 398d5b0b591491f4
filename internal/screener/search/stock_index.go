package search

import (
	"context"
	"fmt"
	"strings"

	"idx-scalping-sniper/internal/entity"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// DefaultLimit caps search results when the caller passes no limit.
const DefaultLimit = 10

// StockIndex finds listed stocks by code or company name.
type StockIndex interface {
	Search(query string, limit int) ([]entity.StockListing, error)
	Resolve(query string) (string, bool)
}

type bleveIndex struct {
	index    bleve.Index
	listings map[string]entity.StockListing
}

// NewStockIndex builds an in-memory index over the given listings.
func NewStockIndex(listings []entity.StockListing) (StockIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create stock index: %w", err)
	}

	byCode := make(map[string]entity.StockListing, len(listings))
	batch := index.NewBatch()
	for _, l := range listings {
		code := strings.ToUpper(strings.TrimSpace(l.Code))
		if code == "" {
			continue
		}
		l.Code = code
		byCode[code] = l
		if err := batch.Index(code, l); err != nil {
			return nil, fmt.Errorf("failed to add %s to batch: %w", code, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to index stock listings: %w", err)
	}

	return &bleveIndex{index: index, listings: byCode}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	listingMapping := bleve.NewDocumentMapping()

	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Store = true
	textFieldMapping.Index = true
	listingMapping.AddFieldMappingsAt("code", textFieldMapping)
	listingMapping.AddFieldMappingsAt("name", textFieldMapping)

	indexMapping.DefaultMapping = listingMapping
	return indexMapping
}

// Search ranks exact code hits first, then code prefixes, then name matches.
func (b *bleveIndex) Search(query string, limit int) ([]entity.StockListing, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.StockListing{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	lower := strings.ToLower(query)

	exactQuery := bleve.NewTermQuery(lower)
	exactQuery.SetField("code")
	exactQuery.SetBoost(10.0)

	prefixQuery := bleve.NewPrefixQuery(lower)
	prefixQuery.SetField("code")
	prefixQuery.SetBoost(5.0)

	nameMatchQuery := bleve.NewMatchQuery(query)
	nameMatchQuery.SetField("name")
	nameMatchQuery.SetBoost(3.0)

	wildcardName := bleve.NewWildcardQuery("*" + lower + "*")
	wildcardName.SetField("name")
	wildcardName.SetBoost(1.5)

	searchRequest := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(
		exactQuery,
		prefixQuery,
		nameMatchQuery,
		wildcardName,
	))
	searchRequest.Size = limit

	searchResults, err := b.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("stock search failed: %w", err)
	}

	results := make([]entity.StockListing, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		if l, ok := b.listings[hit.ID]; ok {
			results = append(results, l)
		}
	}
	return results, nil
}

// Resolve maps a code or company name to a listed code.
func (b *bleveIndex) Resolve(query string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(query))
	if code == "" {
		return "", false
	}
	if _, ok := b.listings[code]; ok {
		return code, true
	}

	hits, err := b.Search(query, 1)
	if err != nil || len(hits) == 0 {
		return "", false
	}
	return hits[0].Code, true
}

// ListingSource supplies the listings to index.
type ListingSource interface {
	GetListings(ctx context.Context) ([]entity.StockListing, error)
}

// Load builds a StockIndex from a listing source.
func Load(ctx context.Context, src ListingSource) (StockIndex, error) {
	listings, err := src.GetListings(ctx)
	if err != nil {
		return nil, err
	}
	return NewStockIndex(listings)
}
