package calculator

import "FuturesReport/internal/model"

// PriceSwing returns the net close-to-close change from the first bar to the last.
func PriceSwing(bars []model.OHLCV) (float64, error) {
	if len(bars) == 0 {
		return 0, model.ErrEmptySeries
	}
	return bars[len(bars)-1].Close - bars[0].Close, nil
}
