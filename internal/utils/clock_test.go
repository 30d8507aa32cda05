package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var start = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func fired(ch <-chan time.Time) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestManualClock_AfterFiresOnAdvance(t *testing.T) {
	c := NewManualClock(start)
	ch := c.After(5 * time.Second)
	assert.Equal(t, 1, c.Pending())

	c.Advance(4 * time.Second)
	assert.False(t, fired(ch))

	c.Advance(time.Second)
	assert.True(t, fired(ch))
	assert.Zero(t, c.Pending())
	assert.Equal(t, start.Add(5*time.Second), c.Now())
}

func TestManualClock_NonPositiveDurationFiresAtOnce(t *testing.T) {
	c := NewManualClock(start)
	assert.True(t, fired(c.After(0)))
	assert.True(t, fired(c.After(-time.Second)))
	assert.Zero(t, c.Pending())
}

func TestManualClock_SetFiresOnlyDueTimers(t *testing.T) {
	c := NewManualClock(start)
	early := c.After(time.Second)
	late := c.After(time.Minute)

	c.Set(start.Add(30 * time.Second))
	assert.True(t, fired(early))
	assert.False(t, fired(late))
	assert.Equal(t, 1, c.Pending())
}

func TestSystemClock(t *testing.T) {
	var c Clock = SystemClock{}
	before := time.Now()
	assert.False(t, c.Now().Before(before))

	select {
	case <-c.After(time.Millisecond):
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
