package main

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppGame_UpdateTerminatesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &AppGame{ctx: ctx}
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
}

func TestAppGame_LayoutIsFixed(t *testing.T) {
	w, h := (&AppGame{}).Layout(640, 480)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}
