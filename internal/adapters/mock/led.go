package mock

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

// LogLED stands in for the pixel when no hardware is attached.
// It logs every color change.
type LogLED struct {
	brightness uint8
	staged     domain.Color
	shown      domain.Color
	started    bool
}

// NewLogLED creates a console LED with the given global brightness
func NewLogLED(brightness uint8) *LogLED {
	return &LogLED{brightness: brightness}
}

func (l *LogLED) SetColor(c domain.Color) {
	l.staged = c
}

// Show logs the staged color if it differs from what is already lit
func (l *LogLED) Show() error {
	if l.started && l.staged == l.shown {
		return nil
	}
	l.started = true
	l.shown = l.staged

	log.Info().
		Str("color", l.shown.String()).
		Str("output", l.shown.Scale(l.brightness).String()).
		Msg("led")
	return nil
}

func (l *LogLED) Close() error {
	return nil
}

// RecordingLED keeps every flushed color, for tests
type RecordingLED struct {
	mu      sync.Mutex
	staged  domain.Color
	shown   []domain.Color
	showErr error
}

func NewRecordingLED() *RecordingLED {
	return &RecordingLED{}
}

func (l *RecordingLED) SetColor(c domain.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.staged = c
}

// Show records the staged color, then returns the configured error if any
func (l *RecordingLED) Show() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shown = append(l.shown, l.staged)
	return l.showErr
}

// FailShow makes every Show return err
func (l *RecordingLED) FailShow(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.showErr = err
}

// Shown returns a copy of the flushed colors in order
func (l *RecordingLED) Shown() []domain.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Color(nil), l.shown...)
}

func (l *RecordingLED) Close() error {
	return nil
}
