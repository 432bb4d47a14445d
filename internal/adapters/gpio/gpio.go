// Package gpio drives the indicator from a Raspberry Pi header using go-rpio.
// Pin numbers are BCM numbers. Open must be called before any constructor.
package gpio

import (
	"context"
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

// Open maps the GPIO registers
func Open() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("failed to open gpio: %w", err)
	}
	return nil
}

// Close unmaps the GPIO registers
func Close() error {
	return rpio.Close()
}

// PIRPair reads the left and right PIR outputs
// This implements the ports.MotionSensors interface
type PIRPair struct {
	left  rpio.Pin
	right rpio.Pin
}

// NewPIRPair configures both pins as inputs
func NewPIRPair(left, right int) *PIRPair {
	p := &PIRPair{
		left:  rpio.Pin(left),
		right: rpio.Pin(right),
	}
	p.left.Input()
	p.right.Input()
	return p
}

// Read samples both pins
func (p *PIRPair) Read(ctx context.Context) (domain.Reading, error) {
	return domain.NewReading(p.left.Read() == rpio.High, p.right.Read() == rpio.High), nil
}

// Close is a no-op; the register mapping is released by gpio.Close
func (p *PIRPair) Close() error {
	return nil
}

// RGBLED is a common-cathode RGB LED wired to three output pins.
// Channels are on/off only, so brightness does not apply.
type RGBLED struct {
	red, green, blue rpio.Pin
	staged           domain.Color
}

// NewRGBLED configures the three channel pins as outputs, all off
func NewRGBLED(red, green, blue int) *RGBLED {
	l := &RGBLED{
		red:   rpio.Pin(red),
		green: rpio.Pin(green),
		blue:  rpio.Pin(blue),
	}
	for _, pin := range []rpio.Pin{l.red, l.green, l.blue} {
		pin.Output()
		pin.Low()
	}
	return l
}

func (l *RGBLED) SetColor(c domain.Color) {
	l.staged = c
}

// Show writes the staged color to the pins
func (l *RGBLED) Show() error {
	r, g, b := channelLevels(l.staged)
	l.red.Write(r)
	l.green.Write(g)
	l.blue.Write(b)
	return nil
}

// Close turns the LED off
func (l *RGBLED) Close() error {
	l.SetColor(domain.Off)
	return l.Show()
}

// channelLevels maps a color to pin levels: any non-zero channel is lit
func channelLevels(c domain.Color) (r, g, b rpio.State) {
	level := func(v uint8) rpio.State {
		if v > 0 {
			return rpio.High
		}
		return rpio.Low
	}
	return level(c.R), level(c.G), level(c.B)
}
