package calculator

import (
	"fmt"

	"FuturesReport/internal/model"
)

// Summarize runs every aggregate over the series. Each pass is read-only.
func Summarize(series *model.PriceSeries) (*model.Summary, error) {
	if series == nil {
		return nil, model.ErrEmptySeries
	}
	bars := series.DailyBars

	avg, err := AverageClose(bars)
	if err != nil {
		return nil, fmt.Errorf("average close: %w", err)
	}
	swing, err := PriceSwing(bars)
	if err != nil {
		return nil, fmt.Errorf("price swing: %w", err)
	}
	maxDay, err := MaxVolumeDay(bars)
	if err != nil {
		return nil, fmt.Errorf("max volume day: %w", err)
	}

	first, _ := series.First()
	last, _ := series.Last()
	return &model.Summary{
		Symbol:       series.Symbol,
		From:         first.Date(),
		To:           last.Date(),
		Days:         series.Len(),
		AverageClose: avg,
		PriceSwing:   swing,
		MaxVolumeDay: maxDay,
	}, nil
}
