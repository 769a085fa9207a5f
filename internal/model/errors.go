package model

import "errors"

var (
	// ErrInvalidConfiguration is returned when generator or run parameters are unusable.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrEmptySeries is returned by every aggregate invoked on a series with no bars.
	ErrEmptySeries = errors.New("empty series")
)
