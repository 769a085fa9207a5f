package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FuturesReport/internal/model"
)

func barsWithCloses(closes ...float64) []model.OHLCV {
	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c, High: c, Low: c, Close: c, Volume: 1000}
	}
	return bars
}

func barsWithVolumes(volumes ...int64) []model.OHLCV {
	bars := barsWithCloses(make([]float64, len(volumes))...)
	for i, v := range volumes {
		bars[i].Volume = v
		bars[i].Close = float64(100 + i)
	}
	return bars
}

func TestCalculateSMA(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		period  int
		want    float64
		wantErr bool
	}{
		{"full window", []float64{1, 2, 3, 4}, 4, 2.5, false},
		{"trailing window", []float64{1, 2, 3, 4}, 2, 3.5, false},
		{"zero period", []float64{1, 2}, 0, 0, true},
		{"not enough data", []float64{1}, 3, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateSMA(tt.prices, tt.period)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAverageClose(t *testing.T) {
	got, err := AverageClose(barsWithCloses(10.0, 20.0, 30.0))
	require.NoError(t, err)
	assert.InDelta(t, 20.0, got, 1e-9)

	got, err = AverageClose(barsWithCloses(501.25))
	require.NoError(t, err)
	assert.InDelta(t, 501.25, got, 1e-9)
}

func TestPriceSwing(t *testing.T) {
	got, err := PriceSwing(barsWithCloses(500.0, 510.0, 490.5, 480.0))
	require.NoError(t, err)
	assert.InDelta(t, -20.0, got, 1e-9)

	got, err = PriceSwing(barsWithCloses(500.0))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestMaxVolumeDay_FirstOccurrenceWins(t *testing.T) {
	bars := barsWithVolumes(1200, 4900, 4900, 1000)
	got, err := MaxVolumeDay(bars)
	require.NoError(t, err)
	assert.Equal(t, bars[1], got)
	assert.NotEqual(t, bars[2].Date(), got.Date())
}

func TestMaxVolumeDay_SingleBar(t *testing.T) {
	bars := barsWithVolumes(3000)
	got, err := MaxVolumeDay(bars)
	require.NoError(t, err)
	assert.Equal(t, bars[0], got)
}

func TestAggregates_EmptySeries(t *testing.T) {
	for _, bars := range [][]model.OHLCV{nil, {}} {
		_, err := AverageClose(bars)
		assert.ErrorIs(t, err, model.ErrEmptySeries)

		_, err = PriceSwing(bars)
		assert.ErrorIs(t, err, model.ErrEmptySeries)

		_, err = MaxVolumeDay(bars)
		assert.ErrorIs(t, err, model.ErrEmptySeries)
	}
}

func TestSummarize(t *testing.T) {
	bars := barsWithCloses(500.0, 505.0, 495.0, 480.0)
	bars[2].Volume = 4200
	series := &model.PriceSeries{Symbol: "ZC", DailyBars: bars}

	sum, err := Summarize(series)
	require.NoError(t, err)
	assert.Equal(t, "ZC", sum.Symbol)
	assert.Equal(t, "2025-10-01", sum.From)
	assert.Equal(t, "2025-10-04", sum.To)
	assert.Equal(t, 4, sum.Days)
	assert.InDelta(t, 495.0, sum.AverageClose, 1e-9)
	assert.InDelta(t, -20.0, sum.PriceSwing, 1e-9)
	assert.Equal(t, bars[2], sum.MaxVolumeDay)
}

func TestSummarize_EmptySeries(t *testing.T) {
	_, err := Summarize(&model.PriceSeries{Symbol: "ZC"})
	assert.ErrorIs(t, err, model.ErrEmptySeries)

	_, err = Summarize(nil)
	assert.ErrorIs(t, err, model.ErrEmptySeries)
}
