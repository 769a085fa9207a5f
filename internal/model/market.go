package model

import "time"

// DateLayout is the calendar label used for bars in reports.
const DateLayout = "2006-01-02"

// OHLCV represents a single daily bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Date returns the bar's calendar date label.
func (b OHLCV) Date() string { return b.Time.Format(DateLayout) }

// PriceSeries holds the generated bars for one contract, oldest first.
type PriceSeries struct {
	Symbol      string
	DailyBars   []OHLCV
	GeneratedAt time.Time
}

func (s *PriceSeries) Len() int { return len(s.DailyBars) }

// First returns the oldest bar. ok is false for an empty series.
func (s *PriceSeries) First() (bar OHLCV, ok bool) {
	if len(s.DailyBars) == 0 {
		return OHLCV{}, false
	}
	return s.DailyBars[0], true
}

// Last returns the newest bar. ok is false for an empty series.
func (s *PriceSeries) Last() (bar OHLCV, ok bool) {
	if len(s.DailyBars) == 0 {
		return OHLCV{}, false
	}
	return s.DailyBars[len(s.DailyBars)-1], true
}
