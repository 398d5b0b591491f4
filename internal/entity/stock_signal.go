package entity

// Signal labels produced by the strategy calculator.
const (
	SignalBullish  = "Momentum Bullish ✅"
	SignalSideways = "Sideways ⚠️ - careful with entry"
	SignalBearish  = "Bearish ❌ - high risk"
)

// ScoredCandidate is a screening survivor with its momentum score and fixed TP/SL levels.
type ScoredCandidate struct {
	Symbol          string   `json:"symbol"`
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	ChangePercent   float64  `json:"changePercent"`
	Volume          float64  `json:"volume"`
	Entry           float64  `json:"entry"`
	TP              string   `json:"tp"`
	SL              string   `json:"sl"`
	DayHigh         float64  `json:"dayHigh"`
	DayLow          float64  `json:"dayLow"`
	MomentumScore   int      `json:"momentumScore"`
	VolumeRatio     float64  `json:"volumeRatio"`
	EstimatedTime   int      `json:"estimatedTime"`
	PotentialProfit float64  `json:"potentialProfit"`
	ProfitPercent   float64  `json:"profitPercent"`
	Reasons         []string `json:"reasons"`
}

// StrategyResult is the entry / take-profit / stop-loss plan for one stock.
type StrategyResult struct {
	Entry float64 `json:"entry"`
	TP1   float64 `json:"tp1"`
	TP2   float64 `json:"tp2"`
	SL    float64 `json:"sl"`
	Note  string  `json:"note"`
}

// WarrantPairing is an active warrant next to its parent stock price.
type WarrantPairing struct {
	Symbol      string  `json:"symbol"`
	Price       float64 `json:"price"`
	ParentPrice float64 `json:"parentPrice"`
}
