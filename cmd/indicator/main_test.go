package main

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"INDICATOR_VARIANT", "POLL_INTERVAL", "STARTUP_DELAY", "SENSOR_TYPE", "LED_TYPE",
		"LED_BRIGHTNESS", "LOG_LEVEL", "LEFT_PIN", "RIGHT_PIN",
	} {
		t.Setenv(key, "")
	}

	cfg := loadConfig()

	if cfg.Variant != domain.VariantCenter {
		t.Errorf("expected center variant, got %v", cfg.Variant)
	}
	if cfg.Interval != 100*time.Millisecond {
		t.Errorf("expected 100ms interval, got %v", cfg.Interval)
	}
	if cfg.StartupDelay != time.Second {
		t.Errorf("expected 1s startup delay, got %v", cfg.StartupDelay)
	}
	if cfg.SensorType != "mock" || cfg.LEDType != "log" {
		t.Errorf("expected mock/log peripherals, got %s/%s", cfg.SensorType, cfg.LEDType)
	}
	if cfg.LeftPin != 9 || cfg.RightPin != 10 {
		t.Errorf("expected pins 9/10, got %d/%d", cfg.LeftPin, cfg.RightPin)
	}
	if cfg.Brightness != 50 {
		t.Errorf("expected brightness 50, got %d", cfg.Brightness)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("INDICATOR_VARIANT", "left-first")
	t.Setenv("POLL_INTERVAL", "200ms")
	t.Setenv("STARTUP_DELAY", "0s")
	t.Setenv("SENSOR_TYPE", "gpio")
	t.Setenv("LEFT_PIN", "5")
	t.Setenv("RIGHT_PIN", "6")
	t.Setenv("LED_BRIGHTNESS", "255")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := loadConfig()

	if cfg.Variant != domain.VariantLeftFirst {
		t.Errorf("expected left-first variant, got %v", cfg.Variant)
	}
	if cfg.Interval != 200*time.Millisecond {
		t.Errorf("expected 200ms interval, got %v", cfg.Interval)
	}
	if cfg.StartupDelay != 0 {
		t.Errorf("expected no startup delay, got %v", cfg.StartupDelay)
	}
	if cfg.SensorType != "gpio" {
		t.Errorf("expected gpio sensors, got %s", cfg.SensorType)
	}
	if cfg.LeftPin != 5 || cfg.RightPin != 6 {
		t.Errorf("expected pins 5/6, got %d/%d", cfg.LeftPin, cfg.RightPin)
	}
	if cfg.Brightness != 255 {
		t.Errorf("expected brightness 255, got %d", cfg.Brightness)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoadConfig_InvalidFallsBack(t *testing.T) {
	t.Setenv("INDICATOR_VARIANT", "diagonal")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("LEFT_PIN", "-1")
	t.Setenv("RIGHT_PIN", "ten")
	t.Setenv("LED_BRIGHTNESS", "300")

	cfg := loadConfig()

	if cfg.Variant != domain.VariantCenter {
		t.Errorf("expected default variant, got %v", cfg.Variant)
	}
	if cfg.Interval != domain.DefaultInterval {
		t.Errorf("expected default interval, got %v", cfg.Interval)
	}
	if cfg.LeftPin != 9 || cfg.RightPin != 10 {
		t.Errorf("expected default pins, got %d/%d", cfg.LeftPin, cfg.RightPin)
	}
	if cfg.Brightness != domain.DefaultBrightness {
		t.Errorf("expected default brightness, got %d", cfg.Brightness)
	}
}
