// internal/component/color.go
package component

import "image/color"

// Color is an HSLA colour. H, S and L live in [0,1) and are cyclic; A is
// plain opacity.
type Color struct {
	H, S, L, A float64
}

// NRGBA converts the colour to 8-bit RGB using the standard HSL formula.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := HSLToRGB(c.H, c.S, c.L)
	return color.NRGBA{
		R: to8(r),
		G: to8(g),
		B: to8(b),
		A: to8(c.A),
	}
}

// HSLToRGB converts h, s, l in [0,1] to r, g, b in [0,1].
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l // ахроматический
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
