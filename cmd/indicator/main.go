package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rhuynh06/motion-indicator/internal/adapters/gpio"
	"github.com/rhuynh06/motion-indicator/internal/adapters/mock"
	"github.com/rhuynh06/motion-indicator/internal/adapters/statusline"
	"github.com/rhuynh06/motion-indicator/internal/domain"
	"github.com/rhuynh06/motion-indicator/internal/ports"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Str("run_id", uuid.NewString()).Logger()

	// Optional .env next to the binary
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded .env")
	}

	config := loadConfig()
	zerolog.SetGlobalLevel(config.LogLevel)

	log.Info().Msg("starting motion indicator")

	// Initialize peripherals
	var (
		sensors ports.MotionSensors
		led     ports.StatusLED
	)
	if config.SensorType == "gpio" || config.LEDType == "gpio" {
		if err := gpio.Open(); err != nil {
			log.Fatal().Err(err).Msg("failed to open GPIO")
		}
		defer gpio.Close()
	}

	switch config.SensorType {
	case "gpio":
		sensors = gpio.NewPIRPair(config.LeftPin, config.RightPin)
		log.Info().Int("left_pin", config.LeftPin).Int("right_pin", config.RightPin).Msg("initialized GPIO sensors")
	default:
		sensors = mock.NewFakeSensor(0.2, 0.2)
		log.Info().Msg("initialized mock sensors")
	}
	defer sensors.Close()

	switch config.LEDType {
	case "gpio":
		led = gpio.NewRGBLED(config.RedPin, config.GreenPin, config.BluePin)
		log.Info().Msg("initialized GPIO RGB LED")
	default:
		led = mock.NewLogLED(config.Brightness)
		log.Info().Msg("initialized log LED")
	}
	defer led.Close()

	status := statusline.NewWriter(os.Stdout)

	opts := ports.DefaultOptions()
	opts.Variant = config.Variant
	opts.Interval = config.Interval
	opts.StartupDelay = config.StartupDelay

	indicator := ports.NewIndicator(sensors, led, status, opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := indicator.Start(ctx); err != nil {
			return
		}
		indicator.Run(ctx)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	cancel()
	<-done

	log.Info().Msg("indicator stopped")
}

// Config holds application configuration
type Config struct {
	Variant      domain.Variant
	Interval     time.Duration
	StartupDelay time.Duration
	SensorType   string // "mock" | "gpio"
	LEDType      string // "log" | "gpio"
	LeftPin      int    // BCM pin of the left PIR
	RightPin     int    // BCM pin of the right PIR
	RedPin       int
	GreenPin     int
	BluePin      int
	Brightness   uint8
	LogLevel     zerolog.Level
}

// loadConfig reads configuration from environment variables.
// Invalid values are logged and replaced by their defaults.
func loadConfig() Config {
	variant := domain.VariantCenter
	if v := os.Getenv("INDICATOR_VARIANT"); v != "" {
		parsed, err := domain.ParseVariant(v)
		if err != nil {
			log.Warn().Err(err).Msg("using default variant")
		} else {
			variant = parsed
		}
	}

	interval := domain.DefaultInterval
	if intervalStr := os.Getenv("POLL_INTERVAL"); intervalStr != "" {
		d, err := time.ParseDuration(intervalStr)
		if err == nil {
			err = domain.ValidateInterval(d)
		}
		if err != nil {
			log.Warn().Err(err).Str("value", intervalStr).Msg("using default poll interval")
		} else {
			interval = d
		}
	}

	startupDelay := time.Second
	if s := os.Getenv("STARTUP_DELAY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= 0 {
			startupDelay = d
		}
	}

	sensorType := os.Getenv("SENSOR_TYPE")
	if sensorType == "" {
		sensorType = "mock"
	}

	ledType := os.Getenv("LED_TYPE")
	if ledType == "" {
		ledType = "log"
	}

	brightness := domain.DefaultBrightness
	if s := os.Getenv("LED_BRIGHTNESS"); s != "" {
		if b, err := strconv.ParseUint(s, 10, 8); err == nil {
			brightness = uint8(b)
		}
	}

	logLevel := zerolog.InfoLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if l, err := zerolog.ParseLevel(s); err == nil {
			logLevel = l
		}
	}

	return Config{
		Variant:      variant,
		Interval:     interval,
		StartupDelay: startupDelay,
		SensorType:   sensorType,
		LEDType:      ledType,
		LeftPin:      envInt("LEFT_PIN", 9),
		RightPin:     envInt("RIGHT_PIN", 10),
		RedPin:       envInt("LED_RED_PIN", 17),
		GreenPin:     envInt("LED_GREEN_PIN", 27),
		BluePin:      envInt("LED_BLUE_PIN", 22),
		Brightness:   brightness,
		LogLevel:     logLevel,
	}
}

func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		log.Warn().Str(key, s).Int("default", def).Msg("invalid pin, using default")
		return def
	}
	return n
}
