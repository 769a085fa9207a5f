package collector

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"FuturesReport/internal/model"
)

// SimParams controls the shape of the simulated random walk.
type SimParams struct {
	StartPrice float64
	StartDate  time.Time
	MinVolume  int64
	MaxVolume  int64 // exclusive
	OpenJitter float64
	CloseSwing float64
	WickMax    float64
}

// DefaultSimParams returns the parameters of the reference corn futures run.
func DefaultSimParams() SimParams {
	return SimParams{
		StartPrice: 500.00,
		StartDate:  time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		MinVolume:  1000,
		MaxVolume:  5000,
		OpenJitter: 1.0,
		CloseSwing: 2.5,
		WickMax:    0.5,
	}
}

func (p SimParams) validate() error {
	if !(p.StartPrice > 0) || math.IsInf(p.StartPrice, 0) {
		return fmt.Errorf("%w: start price must be positive and finite, got %.2f", model.ErrInvalidConfiguration, p.StartPrice)
	}
	if p.MinVolume <= 0 {
		return fmt.Errorf("%w: min volume must be positive, got %d", model.ErrInvalidConfiguration, p.MinVolume)
	}
	if p.MaxVolume <= p.MinVolume {
		return fmt.Errorf("%w: max volume %d must exceed min volume %d", model.ErrInvalidConfiguration, p.MaxVolume, p.MinVolume)
	}
	if p.OpenJitter < 0 || p.CloseSwing < 0 || p.WickMax < 0 {
		return fmt.Errorf("%w: variation bounds must not be negative", model.ErrInvalidConfiguration)
	}
	return nil
}

// NewRand returns a random source for the simulator. A zero seed draws one from the
// clock, so only non-zero seeds reproduce a run; pass 1 or higher for repeatable output.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// SimulatedFetcher generates bars with a bounded random walk seeded from the previous close.
// It is not safe for concurrent use since every call advances the shared source.
type SimulatedFetcher struct {
	Rand   *rand.Rand
	Params SimParams
}

// NewSimulatedFetcher validates params and binds the generator to rng.
func NewSimulatedFetcher(rng *rand.Rand, params SimParams) (*SimulatedFetcher, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", model.ErrInvalidConfiguration)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	return &SimulatedFetcher{Rand: rng, Params: params}, nil
}

func (f *SimulatedFetcher) Name() string { return "simulated" }

// FetchDailyBars produces days consecutive calendar-day bars starting at Params.StartDate.
func (f *SimulatedFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: day count must be positive, got %d", model.ErrInvalidConfiguration, days)
	}
	p := f.Params
	bars := make([]model.OHLCV, 0, days)
	prevClose := p.StartPrice
	for i := 0; i < days; i++ {
		open := prevClose + f.uniform(-p.OpenJitter, p.OpenJitter)
		closePrice := open + f.uniform(-p.CloseSwing, p.CloseSwing)

		// wicks only extend outward so high/low always bound the body
		high := math.Max(open, closePrice) + f.uniform(0, p.WickMax)
		low := math.Min(open, closePrice) - f.uniform(0, p.WickMax)

		volume := p.MinVolume + f.Rand.Int63n(p.MaxVolume-p.MinVolume)

		bars = append(bars, model.OHLCV{
			Time:   p.StartDate.AddDate(0, 0, i),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		})
		prevClose = closePrice
	}
	return bars, nil
}

func (f *SimulatedFetcher) uniform(lo, hi float64) float64 {
	return lo + f.Rand.Float64()*(hi-lo)
}
