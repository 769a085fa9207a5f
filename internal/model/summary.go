package model

// Summary holds the aggregate statistics computed over a PriceSeries.
type Summary struct {
	Symbol       string
	From         string
	To           string
	Days         int
	AverageClose float64
	PriceSwing   float64
	MaxVolumeDay OHLCV
}
