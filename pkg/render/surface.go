package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"

	"go-follow-alert/internal/canvas"
)

// Surface implements canvas.Surface on top of an ebiten image. Point it at
// the screen with SetTarget at the start of every Draw.
type Surface struct {
	target     *ebiten.Image
	strokeImg  *ebiten.Image
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	faceSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace
}

var _ canvas.Surface = (*Surface)(nil)

// NewSurface loads the glyph font and prepares the stroke buffers.
func NewSurface() (*Surface, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &Surface{
		strokeImg:  strokeImg,
		strokeVs:   make([]ebiten.Vertex, 0, 64),
		strokeIs:   make([]uint16, 0, 96),
		faceSource: src,
		faces:      make(map[float64]*text.GoTextFace),
	}, nil
}

// SetTarget selects the image the next primitives are drawn on.
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Begin clears the target and lays the translucent background over it. The
// logical size itself is pinned by the game's Layout.
func (s *Surface) Begin(size canvas.Size, bg color.Color) {
	s.target.Clear()
	vector.DrawFilledRect(s.target, 0, 0, float32(size.W), float32(size.H), bg, false)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func (s *Surface) StrokePath(pts []canvas.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	s.strokeVs, s.strokeIs = path.AppendVerticesAndIndicesForStroke(s.strokeVs[:0], s.strokeIs[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinMiter,
	})
	colorVertices(s.strokeVs, clr)
	s.target.DrawTriangles(s.strokeVs, s.strokeIs, s.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *Surface) FillText(str string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.target, str, s.face(size), op)
}

func (s *Surface) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.faceSource, Size: size}
	s.faces[size] = f
	return f
}
