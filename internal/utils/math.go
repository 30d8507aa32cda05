// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает v диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Wrap приводит v к диапазону [0, period) — в отличие от math.Mod,
// отрицательные значения заворачиваются к верхней границе.
func Wrap(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	if m >= period {
		m = 0
	}
	return m
}

// RotateScale поворачивает точку (x, y) на angle и масштабирует на scale.
func RotateScale(x, y, angle, scale float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return (x*cos - y*sin) * scale, (x*sin + y*cos) * scale
}
