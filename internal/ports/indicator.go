package ports

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rhuynh06/motion-indicator/internal/domain"
)

// Options tunes the indicator loop
type Options struct {
	Variant      domain.Variant
	Interval     time.Duration // fixed delay after every cycle
	ReadyTimeout time.Duration // upper bound on waiting for the status channel
	StartupDelay time.Duration // pause between channel ready and the banner
}

// DefaultOptions mirrors the device defaults
func DefaultOptions() Options {
	return Options{
		Variant:      domain.VariantCenter,
		Interval:     domain.DefaultInterval,
		ReadyTimeout: 5 * time.Second,
		StartupDelay: time.Second,
	}
}

// Indicator owns the peripherals and runs the poll, classify, drive loop.
// It is built once at startup and is the only user of its sensors, LED and
// status sink.
type Indicator struct {
	sensors MotionSensors
	led     StatusLED
	status  StatusSink
	opts    Options

	// sleep blocks for d or until ctx is done
	sleep func(ctx context.Context, d time.Duration) error
}

// NewIndicator creates the motion indicator loop
func NewIndicator(sensors MotionSensors, led StatusLED, status StatusSink, opts Options) *Indicator {
	return &Indicator{
		sensors: sensors,
		led:     led,
		status:  status,
		opts:    opts,
		sleep:   sleepContext,
	}
}

// Start runs the one-time initialization: idle blue on the pixel, wait for the
// status channel, then announce readiness.
func (ind *Indicator) Start(ctx context.Context) error {
	log.Info().
		Str("variant", ind.opts.Variant.String()).
		Dur("interval", ind.opts.Interval).
		Msg("starting motion indicator")

	ind.drive(domain.StateIdle.Color())

	if r, ok := ind.status.(Readier); ok {
		ind.waitReady(ctx, r)
	}

	if ind.opts.StartupDelay > 0 {
		if err := ind.sleep(ctx, ind.opts.StartupDelay); err != nil {
			return err
		}
	}

	ind.emit(domain.Banner)
	return nil
}

// Run repeats Cycle until ctx is cancelled.
// The delay is applied exactly once per iteration whatever the cycle did.
func (ind *Indicator) Run(ctx context.Context) {
	for {
		ind.Cycle(ctx)

		if err := ind.sleep(ctx, ind.opts.Interval); err != nil {
			log.Info().Msg("stopping motion indicator")
			return
		}
	}
}

// Cycle samples the sensors once and pushes the resulting indication to the
// LED and the status channel
func (ind *Indicator) Cycle(ctx context.Context) domain.Indication {
	reading, err := ind.sensors.Read(ctx)
	if err != nil {
		// Fall back to idle so LED and status stay consistent
		log.Error().Err(err).Msg("failed to read sensors")
		reading = domain.NewReading(false, false)
	}

	indication := domain.Classify(reading, ind.opts.Variant)

	ind.drive(indication.Color)
	if indication.HasStatus {
		ind.emit(indication.Status)
	}

	log.Debug().
		Bool("left", reading.Left).
		Bool("right", reading.Right).
		Time("sampled_at", reading.Timestamp).
		Str("state", indication.State.String()).
		Msg("cycle")

	return indication
}

func (ind *Indicator) drive(c domain.Color) {
	ind.led.SetColor(c)
	if err := ind.led.Show(); err != nil {
		log.Error().Err(err).Str("color", c.String()).Msg("failed to show color")
	}
}

func (ind *Indicator) emit(line string) {
	if err := ind.status.WriteLine(line); err != nil {
		log.Error().Err(err).Str("line", line).Msg("failed to write status")
	}
}

// waitReady polls the sink until it is ready. Gives up after ReadyTimeout
// instead of hanging at startup.
func (ind *Indicator) waitReady(ctx context.Context, r Readier) {
	for waited := time.Duration(0); !r.Ready(); waited += readyPoll {
		if waited >= ind.opts.ReadyTimeout {
			log.Warn().Dur("timeout", ind.opts.ReadyTimeout).Msg("status channel not ready, continuing")
			return
		}
		if err := ind.sleep(ctx, readyPoll); err != nil {
			return
		}
	}
}

const readyPoll = 10 * time.Millisecond

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
