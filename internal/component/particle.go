// internal/component/particle.go
package component

// Particle is one short-lived animated entity. It is owned by the particle
// system that spawned it and mutated only by that system's pipeline.
type Particle struct {
	X, Y   float64 // Позиция
	DX, DY float64 // Скорость, px/s
	BaseY  float64 // Базовая линия для траекторий-синусоид
	TTL    float64 // Оставшееся время жизни, секунды
	Alive  bool

	Color  Color
	DColor Color // Скорость изменения цвета, единиц/с

	Size     float64
	Rotation float64 // радианы
	Glyph    string  // для текстовых эффектов
}

// NewParticle returns a live particle with the given position and velocity.
func NewParticle(x, y, dx, dy, ttl float64) *Particle {
	return &Particle{
		X:     x,
		Y:     y,
		DX:    dx,
		DY:    dy,
		TTL:   ttl,
		Alive: true,
		Color: Color{A: 1},
		Size:  16,
	}
}

// Bounds returns the particle's bounding box inflated by its size.
func (p *Particle) Bounds() (minX, minY, maxX, maxY float64) {
	return p.X - p.Size, p.Y - p.Size, p.X + p.Size, p.Y + p.Size
}
