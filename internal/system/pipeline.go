// internal/system/pipeline.go
package system

import (
	"math"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/component"
	"go-follow-alert/internal/utils"
)

// Op is one per-tick transform of a single particle.
type Op func(p *component.Particle, size canvas.Size, dt float64)

// Pipeline is an ordered list of operations shared by every particle of a
// system. Position operations must come before the checks that read the
// updated position.
type Pipeline []Op

// Apply runs the pipeline on p. Once an operation kills the particle the
// rest of the pipeline is skipped.
func (pl Pipeline) Apply(p *component.Particle, size canvas.Size, dt float64) {
	for _, op := range pl {
		if !p.Alive {
			return
		}
		op(p, size, dt)
	}
}

// Move integrates position by velocity.
func Move(p *component.Particle, _ canvas.Size, dt float64) {
	p.X += p.DX * dt
	p.Y += p.DY * dt
}

// MoveSineWave drifts the particle horizontally and places it on a sine
// wave anchored to its BaseY.
func MoveSineWave(waveWidth, waveHeight float64) Op {
	if waveWidth <= 0 {
		panic("system: sine wave width must be positive")
	}
	return func(p *component.Particle, _ canvas.Size, dt float64) {
		p.X += p.DX * dt
		p.Y = p.BaseY + math.Sin(p.X/waveWidth)*waveHeight
	}
}

// Age burns time-to-live and kills the particle once it drops below zero.
func Age(p *component.Particle, _ canvas.Size, dt float64) {
	p.TTL -= dt
	if p.TTL < 0 {
		p.Alive = false
	}
}

// DieOffScreen kills the particle once its bounding box has fully left the
// surface in any direction.
func DieOffScreen(p *component.Particle, size canvas.Size, _ float64) {
	minX, minY, maxX, maxY := p.Bounds()
	if maxX < 0 || maxY < 0 || minX > size.W || minY > size.H {
		p.Alive = false
	}
}

// ColorCycle drifts hue, saturation and lightness by the colour velocity.
// Channels wrap around instead of saturating; opacity is left alone.
func ColorCycle(p *component.Particle, _ canvas.Size, dt float64) {
	p.Color.H = utils.Wrap(p.Color.H+p.DColor.H*dt, 1)
	p.Color.S = utils.Wrap(p.Color.S+p.DColor.S*dt, 1)
	p.Color.L = utils.Wrap(p.Color.L+p.DColor.L*dt, 1)
}
