package calculator

import "FuturesReport/internal/model"

// MaxVolumeDay returns the bar with the greatest volume.
// Ties keep the earliest bar: the running max is only replaced on a strictly larger volume.
func MaxVolumeDay(bars []model.OHLCV) (model.OHLCV, error) {
	if len(bars) == 0 {
		return model.OHLCV{}, model.ErrEmptySeries
	}
	best := bars[0]
	for _, b := range bars[1:] {
		if b.Volume > best.Volume {
			best = b
		}
	}
	return best, nil
}
