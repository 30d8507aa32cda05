package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// colorVertices sets the straight-alpha colour of every vertex to clr.
func colorVertices(vs []ebiten.Vertex, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255
	for i := range vs {
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
