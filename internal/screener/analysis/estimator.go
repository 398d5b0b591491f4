package analysis

import "math"

const (
	minEstimateMinutes = 30
	maxEstimateMinutes = 240
)

// EstimateTimeToTarget guesses how many minutes a candidate needs to reach its
// take-profit. Higher scores, heavier volume and the opening / pre-close sessions
// shorten the estimate; the lunch break lengthens it. hour is the exchange-local hour.
func EstimateTimeToTarget(score int, volumeRatio float64, hour int) int {
	base := 180 - float64(score)*1.5
	base *= volumeFactor(volumeRatio)
	base *= sessionFactor(hour)

	minutes := math.Round(base)
	if math.IsNaN(minutes) || minutes < minEstimateMinutes {
		return minEstimateMinutes
	}
	if minutes > maxEstimateMinutes {
		return maxEstimateMinutes
	}
	return int(minutes)
}

func volumeFactor(ratio float64) float64 {
	switch {
	case ratio > 4:
		return 0.5
	case ratio > 2.5:
		return 0.7
	case ratio > 1.5:
		return 0.85
	}
	return 1
}

func sessionFactor(hour int) float64 {
	switch hour {
	case 9, 14:
		return 0.7
	case 12:
		return 1.2
	}
	return 1
}
