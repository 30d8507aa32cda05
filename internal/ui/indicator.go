// internal/ui/indicator.go
package ui

import (
	"math"
	"sync"

	"go-follow-alert/internal/canvas"
	"go-follow-alert/internal/config"
)

const indicatorSegments = 24

// StateIndicator — отладочный индикатор в углу экрана: кружок, который
// вспыхивает на каждом новом фолловере, и строка со статистикой
type StateIndicator struct {
	X, Y   float64
	Radius float64
	Active func() bool   // цвет кружка: идёт алерт или нет
	Label  func() string // строка справа от кружка

	mu         sync.Mutex
	sincePulse float64
}

func NewStateIndicator(x, y, radius float64) *StateIndicator {
	return &StateIndicator{
		X:          x,
		Y:          y,
		Radius:     radius,
		sincePulse: math.Inf(1),
	}
}

// Pulse запускает вспышку. Вызывается из любой горутины.
func (i *StateIndicator) Pulse() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.sincePulse = 0
}

func (i *StateIndicator) Update(deltaTime float64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.sincePulse += deltaTime
}

// CurrentRadius — радиус с учётом затухающей вспышки
func (i *StateIndicator) CurrentRadius() float64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.Radius * (1.0 + 0.3*math.Exp(-i.sincePulse*8))
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(s canvas.Surface) {
	r := i.CurrentRadius()
	clr := config.IndicatorIdleColor
	if i.Active != nil && i.Active() {
		clr = config.IndicatorActiveColor
	}

	pts := make([]canvas.Point, indicatorSegments+1)
	for k := range pts {
		a := 2 * math.Pi * float64(k) / indicatorSegments
		pts[k] = canvas.Point{X: i.X + r*math.Cos(a), Y: i.Y + r*math.Sin(a)}
	}
	s.StrokePath(pts, r, clr) // толщина r заливает кружок целиком

	if i.Label != nil {
		label := i.Label()
		s.FillText(label, i.X+i.Radius*2+float64(len(label))*config.IndicatorTextSize/4, i.Y, config.IndicatorTextSize, config.BannerCaptionColor)
	}
}
