package system

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/component"
	"go-follow-alert/internal/utils"
)

func newTestOrchestrator() (*Orchestrator, *utils.ManualClock) {
	clock := utils.NewManualClock(epoch)
	return NewOrchestrator(clock, zerolog.Nop()), clock
}

func TestOrchestrator_StartReplacesTheSet(t *testing.T) {
	o, clock := newTestOrchestrator()

	oldSys, oldProbe := newProbeSystem(Pipeline{Move}, false)
	stale := component.NewParticle(0, 0, 10, 0, 5)
	oldProbe.emit = []*component.Particle{stale}
	o.Start(oldSys)
	clock.Advance(time.Second)
	o.Tick(screen, clock.Now())
	require.Equal(t, 1, o.ParticleCount())

	newSys, newProbe := newProbeSystem(Pipeline{Move}, false)
	newProbe.emit = []*component.Particle{component.NewParticle(0, 0, 10, 0, 5)}
	o.Start(newSys)

	assert.False(t, oldSys.Running(), "replaced system is stopped")
	assert.True(t, newSys.Running())
	require.Len(t, o.Active(), 1)
	assert.Same(t, newSys, o.Active()[0])

	clock.Advance(time.Second)
	o.Tick(screen, clock.Now())
	oldProbe.drawn = nil
	o.Render(canvas.NewRecorder())

	assert.Zero(t, stale.X, "old set is no longer ticked")
	assert.Empty(t, oldProbe.drawn, "old set is no longer drawn")
	require.Len(t, newProbe.drawn, 1)
	for _, p := range newProbe.drawn {
		assert.NotSame(t, stale, p, "particle of the replaced set drawn")
	}
}

func TestOrchestrator_StopKeepsTheSet(t *testing.T) {
	o, clock := newTestOrchestrator()
	a, _ := newProbeSystem(nil, false)
	b, _ := newProbeSystem(nil, true)
	o.Start(a, nil, b)
	require.Len(t, o.Active(), 2, "nil members are skipped")

	o.Stop()
	assert.Len(t, o.Active(), 2)
	for _, st := range o.Stats() {
		assert.False(t, st.Running)
	}

	clock.Advance(time.Second)
	o.Tick(screen, clock.Now())
	assert.Zero(t, o.ParticleCount())
}

func TestOrchestrator_AwaitAllFinishing_OnlyNeverFinishing(t *testing.T) {
	o, _ := newTestOrchestrator()
	forever, _ := newProbeSystem(nil, false)
	o.Start(forever)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, o.AwaitAllFinishing(ctx))
}

func TestOrchestrator_AwaitAllFinishing_EmptySet(t *testing.T) {
	o, _ := newTestOrchestrator()
	assert.NoError(t, o.AwaitAllFinishing(context.Background()))
}

func TestOrchestrator_AwaitAllFinishing_WaitsForEveryFinishingSystem(t *testing.T) {
	o, _ := newTestOrchestrator()
	forever, _ := newProbeSystem(nil, false)
	first, _ := newProbeSystem(nil, true)
	second, _ := newProbeSystem(nil, true)
	o.Start(forever, first, second)

	done := make(chan error, 1)
	go func() { done <- o.AwaitAllFinishing(context.Background()) }()

	first.Finish()
	select {
	case <-done:
		t.Fatal("barrier resolved with a finishing system still running")
	case <-time.After(50 * time.Millisecond):
	}

	second.Finish()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("barrier did not resolve")
	}
	assert.True(t, forever.Running(), "never-finishing systems are left alone")
}

func TestOrchestrator_AwaitAllFinishing_HonoursContext(t *testing.T) {
	o, _ := newTestOrchestrator()
	finishing, _ := newProbeSystem(nil, true)
	o.Start(finishing)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, o.AwaitAllFinishing(ctx), context.Canceled)
}

func TestOrchestrator_Stats(t *testing.T) {
	o, clock := newTestOrchestrator()
	ships := newShips(t, nil)
	o.Start(ships)
	clock.Advance(100 * time.Millisecond)
	o.Tick(screen, clock.Now())

	stats := o.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, KindZoomyShips, stats[0].Kind)
	assert.Equal(t, 1, stats[0].Particles)
	assert.True(t, stats[0].Running)
}
