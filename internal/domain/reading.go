package domain

import (
	"time"
)

// Reading is one sample of both PIR sensors.
// It lives for a single loop iteration; nothing is carried over to the next one.
type Reading struct {
	Left      bool
	Right     bool
	Timestamp time.Time
}

// NewReading stamps a fresh sample
func NewReading(left, right bool) Reading {
	return Reading{
		Left:      left,
		Right:     right,
		Timestamp: time.Now(),
	}
}

// IsBoth returns true if both sensors fire in the same sample
func (r Reading) IsBoth() bool {
	return r.Left && r.Right
}
