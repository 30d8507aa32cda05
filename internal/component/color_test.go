package component

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_NRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.NRGBA
	}{
		{"red", Color{H: 0, S: 1, L: 0.5, A: 1}, color.NRGBA{255, 0, 0, 255}},
		{"green", Color{H: 1.0 / 3, S: 1, L: 0.5, A: 1}, color.NRGBA{0, 255, 0, 255}},
		{"blue", Color{H: 2.0 / 3, S: 1, L: 0.5, A: 1}, color.NRGBA{0, 0, 255, 255}},
		{"grey", Color{H: 0.7, S: 0, L: 0.5, A: 1}, color.NRGBA{128, 128, 128, 255}},
		{"black", Color{L: 0, A: 1}, color.NRGBA{0, 0, 0, 255}},
		{"translucent", Color{L: 0, A: 0.3}, color.NRGBA{0, 0, 0, 77}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.NRGBA())
		})
	}
}

func TestNewParticle(t *testing.T) {
	p := NewParticle(1, 2, 3, 4, 5)
	assert.True(t, p.Alive)
	assert.Equal(t, 5.0, p.TTL)
	assert.Equal(t, 1.0, p.Color.A)

	p.Size = 10
	minX, minY, maxX, maxY := p.Bounds()
	assert.Equal(t, []float64{-9, -8, 11, 12}, []float64{minX, minY, maxX, maxY})
}
