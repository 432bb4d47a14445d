package mock

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

// FakeSensor simulates a pair of PIR sensors for development
// This implements the ports.MotionSensors interface
type FakeSensor struct {
	leftChance  float64
	rightChance float64
}

// NewFakeSensor creates a sensor pair that fires at random
// leftChance, rightChance: probability (0..1) that each pin reads HIGH per sample
func NewFakeSensor(leftChance, rightChance float64) *FakeSensor {
	return &FakeSensor{
		leftChance:  leftChance,
		rightChance: rightChance,
	}
}

// Read returns a simulated sample
func (s *FakeSensor) Read(ctx context.Context) (domain.Reading, error) {
	return domain.NewReading(rand.Float64() < s.leftChance, rand.Float64() < s.rightChance), nil
}

// Close is a no-op for fake sensor
func (s *FakeSensor) Close() error {
	return nil
}

// ScriptedSensor replays a fixed sequence of samples, then repeats the last one.
type ScriptedSensor struct {
	mu      sync.Mutex
	samples []domain.Reading
	errs    []error
	reads   int
}

// NewScriptedSensor creates a sensor that returns samples in order
func NewScriptedSensor(samples ...domain.Reading) *ScriptedSensor {
	return &ScriptedSensor{samples: samples}
}

// FailAt makes the n-th read (0-based) return err
func (s *ScriptedSensor) FailAt(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.errs) <= n {
		s.errs = append(s.errs, nil)
	}
	s.errs[n] = err
}

// Read returns the next scripted sample
func (s *ScriptedSensor) Read(ctx context.Context) (domain.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.reads
	s.reads++

	if n < len(s.errs) && s.errs[n] != nil {
		return domain.Reading{}, s.errs[n]
	}
	if len(s.samples) == 0 {
		return domain.NewReading(false, false), nil
	}
	if n >= len(s.samples) {
		n = len(s.samples) - 1
	}
	return s.samples[n], nil
}

// Reads returns how many samples were taken
func (s *ScriptedSensor) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// Close is a no-op
func (s *ScriptedSensor) Close() error {
	return nil
}
