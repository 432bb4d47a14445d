//go:build tinygo

package board

import (
	"context"
	"fmt"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

// PIRPair reads the left and right PIR outputs
// This implements the ports.MotionSensors interface
type PIRPair struct {
	left  machine.Pin
	right machine.Pin
}

// NewPIRPair configures both pins as digital inputs
func NewPIRPair(left, right machine.Pin) *PIRPair {
	left.Configure(machine.PinConfig{Mode: machine.PinInput})
	right.Configure(machine.PinConfig{Mode: machine.PinInput})
	return &PIRPair{left: left, right: right}
}

// Read samples both pins
func (p *PIRPair) Read(ctx context.Context) (domain.Reading, error) {
	return domain.NewReading(p.left.Get(), p.right.Get()), nil
}

func (p *PIRPair) Close() error {
	return nil
}

// Pixel is a single WS2812 pixel with a fixed global brightness
type Pixel struct {
	dev        ws2812.Device
	brightness uint8
	buf        [1]color.RGBA
}

// NewPixel configures pin as output and wraps it in a WS2812 driver
func NewPixel(pin machine.Pin, brightness uint8) *Pixel {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &Pixel{
		dev:        ws2812.New(pin),
		brightness: brightness,
	}
}

// SetColor stages c with the global brightness applied
func (p *Pixel) SetColor(c domain.Color) {
	s := c.Scale(p.brightness)
	p.buf[0] = color.RGBA{R: s.R, G: s.G, B: s.B, A: 255}
}

// Show flushes the staged color to the pixel
func (p *Pixel) Show() error {
	if err := p.dev.WriteColors(p.buf[:]); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrLEDUnavailable, err)
	}
	return nil
}

// Close turns the pixel off
func (p *Pixel) Close() error {
	p.SetColor(domain.Off)
	return p.Show()
}
