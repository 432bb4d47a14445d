package ports

import (
	"context"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

// MotionSensors reads the left and right PIR inputs.
// This is a PORT - adapters (TinyGo pins, go-rpio, Mock) implement it
type MotionSensors interface {
	// Read samples both pins once
	Read(ctx context.Context) (domain.Reading, error)

	// Close releases any resources
	Close() error
}

// StatusLED drives the single status pixel with set-then-flush semantics
type StatusLED interface {
	// SetColor stages the color; nothing reaches the hardware until Show
	SetColor(c domain.Color)

	// Show flushes the staged color to the pixel
	Show() error

	Close() error
}

// StatusSink is the line-oriented status channel
type StatusSink interface {
	WriteLine(line string) error
}

// Readier is implemented by sinks that can report whether the channel is up
type Readier interface {
	Ready() bool
}
