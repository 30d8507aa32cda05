// internal/app/engine.go
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/config"
	"go-follow-alert/internal/event"
	"go-follow-alert/internal/logger"
	"go-follow-alert/internal/system"
	"go-follow-alert/internal/utils"
)

// Engine is the process-wide context. It is created once and handed to the
// scheduler, the sequencer and the host instead of living in package state.
type Engine struct {
	Config       *config.Config
	Clock        utils.Clock
	Rng          *utils.PRNGService
	Events       *event.Dispatcher
	Orchestrator *system.Orchestrator
	Size         canvas.Size

	log zerolog.Logger
}

// NewEngine wires the engine for cfg. A nil clock means the system clock.
func NewEngine(cfg *config.Config, clock utils.Clock) *Engine {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if clock == nil {
		clock = utils.SystemClock{}
	}
	log := logger.WithComponent("engine")
	return &Engine{
		Config:       cfg,
		Clock:        clock,
		Rng:          utils.NewPRNGService(cfg.Seed),
		Events:       event.NewDispatcher(),
		Orchestrator: system.NewOrchestrator(clock, logger.WithComponent("orchestrator")),
		Size:         canvas.Size{W: config.ScreenWidth, H: config.ScreenHeight},
		log:          log,
	}
}

// BuildEffects creates a fresh set of particle systems for one alert, in the
// order the config lists them. Templates are personalised with displayName.
func (e *Engine) BuildEffects(displayName string) ([]*system.ParticleSystem, error) {
	systems := make([]*system.ParticleSystem, 0, len(e.Config.Alert.Effects))
	for _, name := range e.Config.Alert.Effects {
		spec := system.EffectSpec{
			Kind:     system.EffectKind(name),
			Ships:    e.Config.Ships,
			Scroller: e.Config.Scroller,
		}
		spec.Scroller.Message = config.Personalize(spec.Scroller.Message, displayName)

		ps, err := system.NewParticleSystem(spec, e.Rng)
		if err != nil {
			return nil, fmt.Errorf("failed to build effect %q: %w", name, err)
		}
		systems = append(systems, ps)
	}
	e.log.Debug().Int("systems", len(systems)).Str("display_name", displayName).Msg("effects built")
	return systems, nil
}
