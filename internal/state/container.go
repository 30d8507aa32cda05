// internal/state/container.go
package state

import (
	"sync"
	"time"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/ui"
)

// AlertContainer is the on-screen element that hosts an alert. The
// sequencer toggles it from its own goroutine while the scheduler updates
// and draws it, so every method takes the lock.
type AlertContainer struct {
	mu      sync.Mutex
	sm      *StateMachine
	banner  *ui.Banner
	fade    float64
	visible bool
}

// NewAlertContainer creates a hidden container around banner.
func NewAlertContainer(banner *ui.Banner, fade time.Duration) *AlertContainer {
	c := &AlertContainer{
		sm:     NewStateMachine(),
		banner: banner,
		fade:   fade.Seconds(),
	}
	c.sm.SetState(NewHiddenState(banner, c.fade))
	return c
}

func (c *AlertContainer) SetDisplayName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banner.Name = name
}

// SetVisible switches between the visible and hidden states. Repeating the
// current value is a no-op.
func (c *AlertContainer) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if visible == c.visible {
		return
	}
	c.visible = visible
	if visible {
		c.sm.SetState(NewVisibleState(c.banner, c.fade))
	} else {
		c.sm.SetState(NewHiddenState(c.banner, c.fade))
	}
}

func (c *AlertContainer) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Alpha returns the current opacity of the banner.
func (c *AlertContainer) Alpha() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner.Alpha
}

func (c *AlertContainer) Update(deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sm.Update(deltaTime)
}

func (c *AlertContainer) Draw(s canvas.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sm.Draw(s)
}
