// internal/system/effect.go
package system

import (
	"fmt"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/component"
	"go-follow-alert/internal/utils"
)

// EffectKind tags one of the effect variants.
type EffectKind string

const (
	KindZoomyShips   EffectKind = "zoomy_ships"
	KindSineScroller EffectKind = "sine_scroller"
)

// Effect is the behaviour plugged into a ParticleSystem: its pipeline, its
// spawn policy, its completion rule and how one particle is drawn. The set
// of variants is closed; build systems with NewParticleSystem.
type Effect interface {
	Kind() EffectKind
	Pipeline() Pipeline
	WillFinish() bool

	reset()
	spawn(ps *ParticleSystem, size canvas.Size, dt float64)
	settle(ps *ParticleSystem)
	draw(s canvas.Surface, p *component.Particle)
}

// EffectSpec selects a variant and carries its parameters. Only the config
// matching Kind is read.
type EffectSpec struct {
	Kind     EffectKind
	Ships    ShipsConfig
	Scroller ScrollerConfig
}

// NewParticleSystem validates spec and builds a stopped system for it.
func NewParticleSystem(spec EffectSpec, rng *utils.PRNGService) (*ParticleSystem, error) {
	var (
		effect Effect
		err    error
	)
	switch spec.Kind {
	case KindZoomyShips:
		effect, err = newZoomyShips(spec.Ships)
	case KindSineScroller:
		effect, err = newSineScroller(spec.Scroller)
	default:
		return nil, fmt.Errorf("%w: unknown effect kind %q", ErrInvalidConfig, spec.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.Kind, err)
	}
	return newParticleSystem(effect, rng), nil
}
