// internal/canvas/recorder.go
package canvas

import (
	"image/color"
	"sync"
)

// OpKind identifies a recorded drawing primitive.
type OpKind int

const (
	OpBegin OpKind = iota
	OpFillRect
	OpStrokePath
	OpFillText
)

// Op is one recorded primitive.
type Op struct {
	Kind   OpKind
	Points []Point
	Text   string
	Size   float64
	Color  color.Color
}

// Recorder is a Surface that keeps the primitives of the current frame.
// Used by tests and by the headless host.
type Recorder struct {
	mu     sync.Mutex
	size   Size
	ops    []Op
	frames int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Begin starts a new frame and drops the primitives of the previous one.
func (r *Recorder) Begin(size Size, bg color.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.size = size
	r.frames++
	r.ops = append(r.ops[:0], Op{Kind: OpBegin, Color: bg})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.record(Op{
		Kind:   OpFillRect,
		Points: []Point{{X: x, Y: y}, {X: x + w, Y: y + h}},
		Color:  clr,
	})
}

func (r *Recorder) StrokePath(pts []Point, width float64, clr color.Color) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.record(Op{Kind: OpStrokePath, Points: cp, Size: width, Color: clr})
}

func (r *Recorder) FillText(s string, x, y, size float64, clr color.Color) {
	r.record(Op{
		Kind:   OpFillText,
		Points: []Point{{X: x, Y: y}},
		Text:   s,
		Size:   size,
		Color:  clr,
	})
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

// Ops returns a copy of the primitives drawn since the last Begin.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Count returns how many primitives of kind k the current frame holds.
func (r *Recorder) Count(k OpKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, op := range r.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Frames returns the number of frames begun so far.
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Size returns the size passed to the last Begin.
func (r *Recorder) Size() Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.size
}
