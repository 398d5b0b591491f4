package analysis

import (
	"errors"
	"math"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/pkg/utils"
)

// ErrInvalidPrice is returned when a strategy is requested for a non-positive price.
var ErrInvalidPrice = errors.New("price must be positive")

// StrategyInput is what the strategy calculator needs. Zero moving averages or day
// range values mean "unknown".
type StrategyInput struct {
	Price   float64
	MA50    float64
	MA200   float64
	DayHigh float64
	DayLow  float64
}

// StrategyInputFromStock pulls the calculator inputs out of a detail record.
func StrategyInputFromStock(stock entity.Stock) StrategyInput {
	in := StrategyInput{
		Price:   stock.Price,
		DayHigh: stock.DayHigh,
		DayLow:  stock.DayLow,
	}
	if stock.FullData != nil {
		in.MA50 = stock.FullData.FiftyDayAverage
		in.MA200 = stock.FullData.TwoHundredDayAverage
	}
	return in
}

// CalculateStrategy derives entry, two take-profit levels and a stop-loss from
// the price position against MA50 / MA200. The stop-loss is always below entry.
func CalculateStrategy(in StrategyInput) (entity.StrategyResult, error) {
	price := in.Price
	if !(price > 0) || math.IsInf(price, 0) {
		return entity.StrategyResult{}, ErrInvalidPrice
	}

	high := in.DayHigh
	if high == 0 {
		high = price * 1.05
	}
	low := in.DayLow
	if low == 0 {
		low = price * 0.95
	}

	above50 := in.MA50 > 0 && price > in.MA50
	below50 := in.MA50 > 0 && price < in.MA50
	above200 := in.MA200 > 0 && price > in.MA200

	var r entity.StrategyResult
	switch {
	case above50 && above200:
		r.Note = entity.SignalBullish
		r.Entry = price
		r.TP1 = price * 1.05
		r.TP2 = high * 1.02
		r.SL = math.Min(in.MA50, math.Min(low, r.Entry*0.97))
	case above200 && below50:
		r.Note = entity.SignalSideways
		r.Entry = price * 0.99
		r.TP1 = price * 1.03
		r.TP2 = high
		r.SL = math.Min(in.MA200*0.98, r.Entry*0.97)
	default:
		r.Note = entity.SignalBearish
		r.Entry = price
		r.TP1 = price * 1.02
		r.TP2 = price * 1.04
		r.SL = r.Entry * 0.97
	}

	// Also catches NaN from a malformed moving average.
	if !(r.SL < r.Entry) {
		r.SL = r.Entry * 0.97
	}
	return r, nil
}

// RiskReward is (tp1 - entry) / (entry - sl) rounded to two decimals. ok is false
// when entry equals sl.
func RiskReward(r entity.StrategyResult) (ratio float64, ok bool) {
	risk := r.Entry - r.SL
	if risk == 0 {
		return 0, false
	}
	return utils.Round2((r.TP1 - r.Entry) / risk), true
}
