package collector

import (
	"fmt"
	"log"
	"time"

	"FuturesReport/internal/model"
)

// Collector orchestrates bar generation for one contract.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	Days    int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string, days int) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Days: days}
}

// Collect fetches the full series. It returns only after every bar has been produced.
func (c *Collector) Collect() (*model.PriceSeries, error) {
	log.Printf("[INFO] loading %d days of %s data for %s", c.Days, c.Fetcher.Name(), c.Symbol)
	bars, err := c.Fetcher.FetchDailyBars(c.Symbol, c.Days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch daily bars: %w", model.ErrEmptySeries)
	}
	log.Printf("[INFO] loaded %d data points", len(bars))

	return &model.PriceSeries{
		Symbol:      c.Symbol,
		DailyBars:   bars,
		GeneratedAt: time.Now(),
	}, nil
}
