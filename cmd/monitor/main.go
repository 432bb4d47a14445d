package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.bug.st/serial"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Str("run_id", uuid.NewString()).Logger()

	_ = godotenv.Load()
	config := loadConfig()

	in, err := openDevice(config)
	if err != nil {
		log.Fatal().Err(err).Str("device", config.Device).Msg("failed to open status device")
	}
	log.Info().Str("device", config.Device).Int("baud", config.BaudRate).Msg("monitoring status lines")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("shutting down monitor...")
		cancel()
	}()

	monitor := NewMonitor()
	if err := monitor.Run(ctx, in); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("status stream failed")
	}
	in.Close()

	summary := monitor.Summary()
	log.Info().
		Int("left", summary.Counts[domain.StateLeft]).
		Int("right", summary.Counts[domain.StateRight]).
		Int("center", summary.Counts[domain.StateCenter]).
		Int("restarts", summary.Restarts).
		Int("unknown", summary.Unknown).
		Str("last", summary.Last.String()).
		Str("lane", summary.Lane.String()).
		Msg("monitor stopped")
}

// Config holds monitor configuration
type Config struct {
	Device   string // serial port path, or "-" for stdin
	BaudRate int
}

func loadConfig() Config {
	device := os.Getenv("MONITOR_DEVICE")
	if device == "" {
		device = "-"
	}

	baud := 115200
	if s := os.Getenv("MONITOR_BAUD"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			baud = n
		}
	}

	return Config{Device: device, BaudRate: baud}
}

// openDevice opens the serial port at the configured rate and drops
// anything buffered before the monitor started
func openDevice(config Config) (io.ReadCloser, error) {
	if config.Device == "-" {
		return os.Stdin, nil
	}

	port, err := serial.Open(config.Device, &serial.Mode{BaudRate: config.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", config.Device, err)
	}
	if err := port.ResetInputBuffer(); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to reset input buffer: %w", err)
	}
	return port, nil
}
