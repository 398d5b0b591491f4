// Package analysis holds the scoring and trade-level math shared by every entry point.
package analysis

import "idx-scalping-sniper/internal/entity"

// DefaultAverageVolume stands in for a missing 10-day average volume.
const DefaultAverageVolume = 1_000_000

// Momentum is the outcome of scoring one stock.
type Momentum struct {
	Score       int
	Reasons     []string
	VolumeRatio float64
}

type tier struct {
	points int
	reason string
}

// VolumeRatio is today's volume over the 10-day average (DefaultAverageVolume when unknown).
func VolumeRatio(volume, averageVolume10Day float64) float64 {
	if averageVolume10Day == 0 {
		averageVolume10Day = DefaultAverageVolume
	}
	return volume / averageVolume10Day
}

// RangePosition is where price sits inside the day range, 0 at the low and 1 at the high.
// ok is false when the range is empty.
func RangePosition(price, dayLow, dayHigh float64) (pos float64, ok bool) {
	if dayHigh == dayLow {
		return 0, false
	}
	return (price - dayLow) / (dayHigh - dayLow), true
}

// ScoreMomentum rates a stock from 0 to 100 across volume, price change, day-range
// position, moving-average position and market cap. Each category contributes at most one tier.
func ScoreMomentum(stock entity.StockSummary, detail entity.StockDetail) Momentum {
	ratio := VolumeRatio(stock.Volume, detail.AverageDailyVolume10Day)

	tiers := []tier{
		volumeTier(ratio),
		changeTier(stock.ChangePercent),
		rangeTier(stock),
		movingAverageTier(stock.Price, detail.FiftyDayAverage, detail.TwoHundredDayAverage),
		marketCapTier(stock.MarketCap),
	}

	m := Momentum{VolumeRatio: ratio, Reasons: []string{}}
	for _, t := range tiers {
		if t.points == 0 {
			continue
		}
		m.Score += t.points
		m.Reasons = append(m.Reasons, t.reason)
	}
	return m
}

func volumeTier(ratio float64) tier {
	switch {
	case ratio > 4:
		return tier{25, "Volume >4x average"}
	case ratio > 2.5:
		return tier{20, "Volume >2.5x average"}
	case ratio > 1.5:
		return tier{15, "Volume >1.5x average"}
	}
	return tier{}
}

func changeTier(changePercent float64) tier {
	switch {
	case changePercent > 8:
		return tier{25, "Increase >8%"}
	case changePercent > 5:
		return tier{20, "Increase >5%"}
	case changePercent > 3:
		return tier{15, "Increase >3%"}
	}
	return tier{}
}

// rangeTier scores (0.8, 0.9] above (0.9, ...]. Closing right at the high is
// treated as less attractive than sitting just below it.
func rangeTier(stock entity.StockSummary) tier {
	pos, ok := RangePosition(stock.Price, stock.DayLow, stock.DayHigh)
	if !ok {
		return tier{}
	}
	switch {
	case pos > 0.8 && pos <= 0.9:
		return tier{20, "Near daily high"}
	case pos > 0.9:
		return tier{15, "Very near daily high"}
	case pos > 0.6:
		return tier{15, "Above midpoint"}
	}
	return tier{}
}

func movingAverageTier(price, ma50, ma200 float64) tier {
	if ma50 == 0 || ma200 == 0 {
		return tier{}
	}
	above50 := price > ma50
	above200 := price > ma200
	switch {
	case above50 && above200:
		return tier{20, ">MA50 & MA200"}
	case above50:
		return tier{15, ">MA50"}
	}
	return tier{}
}

func marketCapTier(marketCap float64) tier {
	switch {
	case marketCap > 1e12:
		return tier{10, "High liquidity"}
	case marketCap > 5e11:
		return tier{7, "Adequate liquidity"}
	}
	return tier{}
}
