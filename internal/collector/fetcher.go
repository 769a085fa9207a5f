package collector

import "FuturesReport/internal/model"

// Fetcher defines the interface for producing daily bars for a symbol.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
