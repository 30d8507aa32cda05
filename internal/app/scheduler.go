// internal/app/scheduler.go
package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/config"
	"go-follow-alert/internal/logger"
	"go-follow-alert/internal/metrics"
	"go-follow-alert/internal/system"
)

// Overlay is something drawn on top of the particles, like the alert
// container. It is advanced on simulation ticks and drawn on render ticks.
type Overlay interface {
	Update(deltaTime float64)
	Draw(s canvas.Surface)
}

// Scheduler drives the simulation tick and the render tick. The window host
// calls Tick from ebiten's Update and Frame from Draw; the headless host
// uses Run. Either way both run on one goroutine.
type Scheduler struct {
	engine   *Engine
	overlays []Overlay
	period   time.Duration
	lastTick time.Time
	ticks    atomic.Uint64
	frames   atomic.Uint64
	log      zerolog.Logger
}

// NewScheduler creates a scheduler for the engine's active set.
func NewScheduler(e *Engine, overlays ...Overlay) *Scheduler {
	return &Scheduler{
		engine:   e,
		overlays: overlays,
		period:   config.TickPeriod(),
		lastTick: e.Clock.Now(),
		log:      logger.WithComponent("scheduler"),
	}
}

// Tick runs one simulation step of the active set and the overlays.
func (s *Scheduler) Tick() {
	start := time.Now()

	now := s.engine.Clock.Now()
	deltaTime := now.Sub(s.lastTick).Seconds()
	if deltaTime < 0 {
		deltaTime = 0
	}
	s.lastTick = now

	s.engine.Orchestrator.Tick(s.engine.Size, now)
	for _, o := range s.overlays {
		o.Update(deltaTime)
	}

	s.ticks.Add(1)
	s.publish()
	metrics.TickDuration.Observe(time.Since(start).Seconds())
}

// Frame clears dst at the fixed logical size and draws the active set, then
// the overlays.
func (s *Scheduler) Frame(dst canvas.Surface) {
	dst.Begin(s.engine.Size, config.BackgroundColor)
	s.engine.Orchestrator.Render(dst)
	for _, o := range s.overlays {
		o.Draw(dst)
	}
	s.frames.Add(1)
	metrics.FramesTotal.Inc()
}

// Run drives both loops until ctx ends. The tick timer is re-armed for a
// full period after every tick, so a slow tick delays the next one instead
// of being caught up.
func (s *Scheduler) Run(ctx context.Context, dst canvas.Surface) error {
	tick := time.NewTimer(s.period)
	defer tick.Stop()
	frame := time.NewTicker(time.Second / time.Duration(s.engine.Config.FrameRate))
	defer frame.Stop()

	s.log.Info().
		Dur("tick_period", s.period).
		Int("frame_rate", s.engine.Config.FrameRate).
		Msg("headless scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Uint64("ticks", s.Ticks()).Uint64("frames", s.Frames()).Msg("headless scheduler stopped")
			return ctx.Err()
		case <-tick.C:
			s.Tick()
			tick.Reset(s.period)
		case <-frame.C:
			s.Frame(dst)
		}
	}
}

// Ticks returns the number of simulation ticks run so far.
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

// Frames returns the number of frames rendered so far.
func (s *Scheduler) Frames() uint64 { return s.frames.Load() }

func (s *Scheduler) publish() {
	counts := map[system.EffectKind]int{
		system.KindZoomyShips:   0,
		system.KindSineScroller: 0,
	}
	for _, st := range s.engine.Orchestrator.Stats() {
		counts[st.Kind] += st.Particles
	}
	for kind, n := range counts {
		metrics.ActiveParticles.WithLabelValues(string(kind)).Set(float64(n))
	}
}
