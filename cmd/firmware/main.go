//go:build tinygo

// Command firmware is the device program. Build it with TinyGo, for example:
//
//	tinygo flash -target=esp32s3 ./cmd/firmware
package main

import (
	"context"
	"machine"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rhuynh06/motion-indicator/internal/adapters/board"
	"github.com/rhuynh06/motion-indicator/internal/adapters/statusline"
	"github.com/rhuynh06/motion-indicator/internal/domain"
	"github.com/rhuynh06/motion-indicator/internal/ports"
)

// Board wiring
const (
	leftPin  = machine.GPIO9  // PIR sensor 1 (left)
	rightPin = machine.GPIO10 // PIR sensor 2 (right)
	pixelPin = machine.GPIO38 // on-board RGB pixel

	baudRate = 115200
	variant  = domain.VariantCenter
)

func main() {
	// The serial port carries status lines only
	log.Logger = zerolog.Nop()

	pixel := board.NewPixel(pixelPin, domain.DefaultBrightness)
	sensors := board.NewPIRPair(leftPin, rightPin)

	machine.Serial.Configure(machine.UARTConfig{BaudRate: baudRate})
	status := statusline.NewWriter(machine.Serial)

	opts := ports.DefaultOptions()
	opts.Variant = variant

	indicator := ports.NewIndicator(sensors, pixel, status, opts)

	// Never cancelled: the loop runs until power off or reset
	ctx := context.Background()
	indicator.Start(ctx)
	indicator.Run(ctx)
}
