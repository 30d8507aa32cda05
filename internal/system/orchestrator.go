// internal/system/orchestrator.go
package system

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/utils"
)

// SystemStats is a point-in-time view of one active system.
type SystemStats struct {
	Kind      EffectKind
	Particles int
	Running   bool
}

// Orchestrator owns the set of particle systems of the current alert. The
// set is replaced wholesale by Start and never edited in place, so a tick or
// frame always sees either the old or the new set.
type Orchestrator struct {
	mu     sync.Mutex
	clock  utils.Clock
	active []*ParticleSystem
	log    zerolog.Logger
}

// NewOrchestrator creates an orchestrator with an empty active set.
func NewOrchestrator(clock utils.Clock, log zerolog.Logger) *Orchestrator {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Orchestrator{clock: clock, log: log}
}

// Start stops and discards the current set, then installs and starts the
// given systems.
func (o *Orchestrator) Start(systems ...*ParticleSystem) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, ps := range o.active {
		ps.Stop()
	}

	now := o.clock.Now()
	next := make([]*ParticleSystem, 0, len(systems))
	for _, ps := range systems {
		if ps == nil {
			continue
		}
		ps.Start(now)
		next = append(next, ps)
	}
	o.log.Debug().
		Int("replaced", len(o.active)).
		Int("systems", len(next)).
		Msg("active set started")
	o.active = next
}

// Stop halts every active system. The set stays addressable until the next
// Start.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ps := range o.active {
		ps.Stop()
	}
	o.log.Debug().Int("systems", len(o.active)).Msg("active set stopped")
}

// Tick advances every active system, stopped ones included.
func (o *Orchestrator) Tick(size canvas.Size, now time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ps := range o.active {
		ps.Tick(size, now)
	}
}

// Render draws every active system in set order.
func (o *Orchestrator) Render(s canvas.Surface) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, ps := range o.active {
		ps.Render(s)
	}
}

// AwaitAllFinishing blocks until every active system that can finish has
// finished. Systems that never finish are left out; with none left the call
// returns at once.
func (o *Orchestrator) AwaitAllFinishing(ctx context.Context) error {
	o.mu.Lock()
	var waits []<-chan struct{}
	for _, ps := range o.active {
		if ps.WillEverFinish() {
			waits = append(waits, ps.Done())
		}
	}
	o.mu.Unlock()

	for _, done := range waits {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Active returns a copy of the active set.
func (o *Orchestrator) Active() []*ParticleSystem {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]*ParticleSystem, len(o.active))
	copy(out, o.active)
	return out
}

// Stats reports pool sizes and running flags of the active set.
func (o *Orchestrator) Stats() []SystemStats {
	o.mu.Lock()
	defer o.mu.Unlock()
	stats := make([]SystemStats, 0, len(o.active))
	for _, ps := range o.active {
		stats = append(stats, SystemStats{
			Kind:      ps.Kind(),
			Particles: ps.Len(),
			Running:   ps.Running(),
		})
	}
	return stats
}

// ParticleCount returns the total pool size of the active set.
func (o *Orchestrator) ParticleCount() int {
	n := 0
	for _, st := range o.Stats() {
		n += st.Particles
	}
	return n
}
