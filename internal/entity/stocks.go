package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StockSummary is one row of the market snapshot.
type StockSummary struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	Volume        float64 `json:"volume"`
	MarketCap     float64 `json:"marketCap"`
	DayHigh       float64 `json:"dayHigh"`
	DayLow        float64 `json:"dayLow"`
}

// StockDetail holds the fundamentals nested under "fullData". Missing numbers decode as zero.
type StockDetail struct {
	FiftyDayAverage         float64    `json:"fiftyDayAverage"`
	TwoHundredDayAverage    float64    `json:"twoHundredDayAverage"`
	TrailingPE              float64    `json:"trailingPE"`
	PriceToBook             float64    `json:"priceToBook"`
	DividendYield           float64    `json:"dividendYield"`
	EpsTrailingTwelveMonths float64    `json:"epsTrailingTwelveMonths"`
	AverageAnalystRating    FlexString `json:"averageAnalystRating"`
	AverageDailyVolume10Day float64    `json:"averageDailyVolume10Day"`
}

// Stock is the per-symbol record: the summary fields plus optional fundamentals.
type Stock struct {
	StockSummary
	LastUpdated string       `json:"lastUpdated,omitempty"`
	FullData    *StockDetail `json:"fullData,omitempty"`
}

// FlexString accepts either a JSON string or a number.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

// StockListing is one row of the exchange code list.
type StockListing struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
