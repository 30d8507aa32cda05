// internal/system/particle_system.go
package system

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/component"
	"go-follow-alert/internal/utils"
)

var (
	// ErrNeverFinishes is returned when a caller waits on a system whose
	// effect runs until it is stopped from outside.
	ErrNeverFinishes = errors.New("particle system never finishes")
	// ErrInvalidConfig wraps every effect construction failure.
	ErrInvalidConfig = errors.New("invalid effect config")
)

// ParticleSystem owns a pool of particles, the pipeline that advances them
// and the run/finish lifecycle of one effect. It is not safe for concurrent
// use; the Orchestrator serialises access. Done is the only part meant to
// be read from other goroutines.
type ParticleSystem struct {
	effect    Effect
	pipeline  Pipeline
	particles []*component.Particle
	running   bool
	lastTick  time.Time
	spawned   int
	rng       *utils.PRNGService

	done       chan struct{}
	finishOnce sync.Once
}

func newParticleSystem(effect Effect, rng *utils.PRNGService) *ParticleSystem {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	return &ParticleSystem{
		effect:   effect,
		pipeline: effect.Pipeline(),
		rng:      rng,
		done:     make(chan struct{}),
	}
}

// Kind reports which effect variant drives the system.
func (ps *ParticleSystem) Kind() EffectKind {
	return ps.effect.Kind()
}

// WillEverFinish reports whether the effect ends on its own.
func (ps *ParticleSystem) WillEverFinish() bool {
	return ps.effect.WillFinish()
}

func (ps *ParticleSystem) Running() bool {
	return ps.running
}

// Len returns the number of particles in the pool.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Spawned returns how many particles were emitted since the last Start.
func (ps *ParticleSystem) Spawned() int {
	return ps.spawned
}

// Particles returns a snapshot of the pool in pool order.
func (ps *ParticleSystem) Particles() []*component.Particle {
	out := make([]*component.Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}

// Start empties the pool, resets the effect and the tick clock and marks the
// system running.
func (ps *ParticleSystem) Start(now time.Time) {
	clear(ps.particles)
	ps.particles = ps.particles[:0]
	ps.spawned = 0
	ps.lastTick = now
	ps.effect.reset()
	ps.running = true
}

// Stop halts simulation and rendering but keeps the pool for inspection.
func (ps *ParticleSystem) Stop() {
	ps.running = false
}

// Emit adds a particle to the pool. Ignored while the system is stopped.
func (ps *ParticleSystem) Emit(p *component.Particle) {
	if !ps.running || p == nil {
		return
	}
	ps.particles = append(ps.particles, p)
	ps.spawned++
}

// Tick advances the system to now and returns the elapsed seconds (0 when
// stopped). Particles emitted during the tick are first updated on the next
// one; dead particles are pruned only after every particle was updated.
func (ps *ParticleSystem) Tick(size canvas.Size, now time.Time) float64 {
	dt := now.Sub(ps.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	ps.lastTick = now
	if !ps.running {
		return 0
	}

	n := len(ps.particles)
	ps.effect.spawn(ps, size, dt)

	for _, p := range ps.particles[:n] {
		ps.pipeline.Apply(p, size, dt)
	}
	ps.prune()

	ps.effect.settle(ps)
	return dt
}

func (ps *ParticleSystem) prune() {
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	clear(ps.particles[len(alive):])
	ps.particles = alive
}

// Render draws every live particle in pool order while running.
func (ps *ParticleSystem) Render(s canvas.Surface) {
	if !ps.running {
		return
	}
	for _, p := range ps.particles {
		if p.Alive {
			ps.effect.draw(s, p)
		}
	}
}

// Finish is the terminal transition of a finishing effect: it stops the
// system and releases every completion waiter exactly once.
func (ps *ParticleSystem) Finish() {
	ps.running = false
	ps.finishOnce.Do(func() {
		close(ps.done)
	})
}

// Done is closed when the system finishes.
func (ps *ParticleSystem) Done() <-chan struct{} {
	return ps.done
}

// AwaitCompletion blocks until Finish is called or ctx ends.
func (ps *ParticleSystem) AwaitCompletion(ctx context.Context) error {
	if !ps.WillEverFinish() {
		return ErrNeverFinishes
	}
	select {
	case <-ps.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
