package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/config"
	"go-follow-alert/internal/system"
	"go-follow-alert/internal/utils"
)

var epoch = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, mutate func(*config.Config)) (*Engine, *utils.ManualClock) {
	t.Helper()
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.Seed = 7
	if mutate != nil {
		mutate(cfg)
	}
	clock := utils.NewManualClock(epoch)
	return NewEngine(cfg, clock), clock
}

func effects(kinds ...system.EffectKind) func(*config.Config) {
	return func(c *config.Config) {
		c.Alert.Effects = c.Alert.Effects[:0]
		for _, k := range kinds {
			c.Alert.Effects = append(c.Alert.Effects, string(k))
		}
	}
}

type fakeMessenger struct {
	mu   sync.Mutex
	said []string
}

func (m *fakeMessenger) Say(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.said = append(m.said, text)
}

func (m *fakeMessenger) Said() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.said...)
}

// fakeContainer записывает вызовы и размер активного набора в момент показа
type fakeContainer struct {
	mu           sync.Mutex
	orch         *system.Orchestrator
	name         string
	visible      bool
	calls        []string
	activeOnShow []int
}

func (c *fakeContainer) SetDisplayName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
	c.calls = append(c.calls, "name:"+name)
}

func (c *fakeContainer) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = visible
	if visible {
		c.calls = append(c.calls, "show")
		if c.orch != nil {
			c.activeOnShow = append(c.activeOnShow, len(c.orch.Active()))
		}
		return
	}
	c.calls = append(c.calls, "hide")
}

func (c *fakeContainer) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

func (c *fakeContainer) ActiveOnShow() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.activeOnShow...)
}

func (c *fakeContainer) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

type fakeOverlay struct {
	updates []float64
	draws   int
}

func (o *fakeOverlay) Update(deltaTime float64) { o.updates = append(o.updates, deltaTime) }

func (o *fakeOverlay) Draw(s canvas.Surface) {
	o.draws++
	s.FillRect(0, 0, 1, 1, config.BannerFillColor)
}
