// internal/system/zoomy_ships.go
package system

import (
	"fmt"
	"math"
	"time"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/component"
	"go-follow-alert/internal/utils"
)

// Edge is the side of the screen ships enter from.
type Edge string

const (
	EdgeLeft  Edge = "left"
	EdgeRight Edge = "right"
)

// maxSpawnsPerTick caps the burst after a long stall of the tick loop.
const maxSpawnsPerTick = 8

// Стрелка корабля в координатах 100x100, нос смотрит вверх.
var shipOutline = []canvas.Point{
	{X: 0, Y: -50},
	{X: -45, Y: 50},
	{X: -12.5, Y: 12.5},
	{X: 0, Y: 25},
	{X: 12.5, Y: 12.5},
	{X: 45, Y: 50},
	{X: 0, Y: -50},
}

// ShipsConfig parameterises the directional emitter.
type ShipsConfig struct {
	SpawnInterval time.Duration `mapstructure:"spawnInterval"`
	MinSpeed      float64       `mapstructure:"minSpeed"`
	MaxSpeed      float64       `mapstructure:"maxSpeed"`
	TTL           float64       `mapstructure:"ttl"`
	Size          float64       `mapstructure:"size"`
	SpawnInset    float64       `mapstructure:"spawnInset"`
	Edge          Edge          `mapstructure:"edge"`
	Saturation    float64       `mapstructure:"saturation"`
	Lightness     float64       `mapstructure:"lightness"`
	MaxHueDrift   float64       `mapstructure:"maxHueDrift"`
	LineWidth     float64       `mapstructure:"lineWidth"`
}

// DefaultShipsConfig returns the parameters of the classic follow alert.
func DefaultShipsConfig() ShipsConfig {
	return ShipsConfig{
		SpawnInterval: 100 * time.Millisecond,
		MinSpeed:      500,
		MaxSpeed:      1000,
		TTL:           10,
		Size:          48,
		SpawnInset:    32,
		Edge:          EdgeLeft,
		Saturation:    0.75,
		Lightness:     0.5,
		MaxHueDrift:   1,
		LineWidth:     3,
	}
}

// Validate reports the first unusable parameter.
func (c ShipsConfig) Validate() error {
	switch {
	case c.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive", ErrInvalidConfig)
	case c.MinSpeed <= 0 || c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("%w: speed range [%v, %v]", ErrInvalidConfig, c.MinSpeed, c.MaxSpeed)
	case c.TTL <= 0:
		return fmt.Errorf("%w: ttl must be positive", ErrInvalidConfig)
	case c.Size <= 0:
		return fmt.Errorf("%w: size must be positive", ErrInvalidConfig)
	case c.SpawnInset < 0 || c.SpawnInset > c.Size:
		// при рождении корабль хотя бы краем на экране
		return fmt.Errorf("%w: spawn inset %v must be within [0, size %v]", ErrInvalidConfig, c.SpawnInset, c.Size)
	case c.Edge != EdgeLeft && c.Edge != EdgeRight:
		return fmt.Errorf("%w: unknown edge %q", ErrInvalidConfig, c.Edge)
	case c.Saturation < 0 || c.Saturation >= 1 || c.Lightness < 0 || c.Lightness >= 1:
		return fmt.Errorf("%w: saturation and lightness must be in [0,1)", ErrInvalidConfig)
	case c.MaxHueDrift < 0 || c.LineWidth < 0:
		return fmt.Errorf("%w: negative hue drift or line width", ErrInvalidConfig)
	}
	return nil
}

// zoomyShips spawns coloured ships at one screen edge at a fixed cadence
// until it is stopped from outside.
type zoomyShips struct {
	cfg      ShipsConfig
	interval float64
	acc      float64
}

func newZoomyShips(cfg ShipsConfig) (*zoomyShips, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &zoomyShips{cfg: cfg, interval: cfg.SpawnInterval.Seconds()}, nil
}

func (z *zoomyShips) Kind() EffectKind { return KindZoomyShips }

func (z *zoomyShips) Pipeline() Pipeline {
	return Pipeline{Move, Age, ColorCycle, DieOffScreen}
}

func (z *zoomyShips) WillFinish() bool { return false }

func (z *zoomyShips) reset() { z.acc = 0 }

func (z *zoomyShips) spawn(ps *ParticleSystem, size canvas.Size, dt float64) {
	z.acc += dt
	for n := 0; z.acc >= z.interval; n++ {
		if n == maxSpawnsPerTick {
			z.acc = 0
			return
		}
		z.acc -= z.interval
		ps.Emit(z.newShip(ps.rng, size))
	}
}

func (z *zoomyShips) newShip(rng *utils.PRNGService, size canvas.Size) *component.Particle {
	speed := rng.Range(z.cfg.MinSpeed, z.cfg.MaxSpeed)
	x, dx, rotation := -z.cfg.SpawnInset, speed, math.Pi/2
	if z.cfg.Edge == EdgeRight {
		x, dx, rotation = size.W+z.cfg.SpawnInset, -speed, -math.Pi/2
	}

	p := component.NewParticle(x, rng.Range(0, size.H), dx, 0, z.cfg.TTL)
	p.Size = z.cfg.Size
	p.Rotation = rotation
	p.Color = component.Color{H: rng.Float64(), S: z.cfg.Saturation, L: z.cfg.Lightness, A: 1}
	p.DColor = component.Color{H: rng.Range(0, z.cfg.MaxHueDrift)}
	return p
}

func (z *zoomyShips) settle(*ParticleSystem) {}

func (z *zoomyShips) draw(s canvas.Surface, p *component.Particle) {
	scale := p.Size / 100
	pts := make([]canvas.Point, len(shipOutline))
	for i, v := range shipOutline {
		x, y := utils.RotateScale(v.X, v.Y, p.Rotation, scale)
		pts[i] = canvas.Point{X: p.X + x, Y: p.Y + y}
	}
	s.StrokePath(pts, z.cfg.LineWidth*scale, p.Color.NRGBA())
}
