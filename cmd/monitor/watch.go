package main

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/rhuynh06/motion-indicator/internal/adapters/statusline"
	"github.com/rhuynh06/motion-indicator/internal/domain"
)

// Summary counts what the monitor saw on the stream
type Summary struct {
	Counts   map[domain.State]int
	Restarts int // banners seen, one per device boot
	Unknown  int
	Last     domain.State
	Lane     Lane
}

// Monitor decodes a status stream and tracks the player lane
type Monitor struct {
	mu      sync.Mutex
	summary Summary
}

// NewMonitor starts in the left lane with nothing counted
func NewMonitor() *Monitor {
	return &Monitor{
		summary: Summary{Counts: make(map[domain.State]int), Lane: LaneLeft},
	}
}

// Run consumes r until the stream ends or ctx is cancelled.
// A read that never returns does not hold up cancellation; the reading
// goroutine is abandoned and the caller closes the input.
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	done := make(chan error, 1)
	go func() {
		done <- m.watch(r)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Summary returns a snapshot of the counters
func (m *Monitor) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.summary
	s.Counts = make(map[domain.State]int, len(m.summary.Counts))
	for state, n := range m.summary.Counts {
		s.Counts[state] = n
	}
	return s
}

// watch logs every status line until the stream ends.
// Unknown lines are reported and skipped.
func (m *Monitor) watch(r io.Reader) error {
	sc := statusline.NewScanner(r)
	for sc.Scan() {
		m.record(sc.Event())
	}

	// A closed port after a shutdown signal is not a failure
	if err := sc.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

func (m *Monitor) record(ev statusline.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case errors.Is(ev.Err, statusline.ErrBanner):
		m.summary.Restarts++
		log.Info().Msg("device started")
	case ev.Err != nil:
		m.summary.Unknown++
		log.Warn().Err(ev.Err).Msg("skipping line")
	default:
		m.summary.Counts[ev.State]++
		m.summary.Last = ev.State
		m.summary.Lane = m.summary.Lane.Move(ev.State)
		log.Info().
			Str("direction", ev.State.String()).
			Str("lane", m.summary.Lane.String()).
			Str("raw", ev.Raw).
			Msg("motion")
	}
}
