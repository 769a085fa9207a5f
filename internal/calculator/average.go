package calculator

import (
	"errors"

	"FuturesReport/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// AverageClose returns the arithmetic mean of every close in bars.
func AverageClose(bars []model.OHLCV) (float64, error) {
	if len(bars) == 0 {
		return 0, model.ErrEmptySeries
	}
	return CalculateSMA(extractCloses(bars), len(bars))
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
