package focus

import (
	"image/color"

	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
)

const (
	scaleClosed float32 = 1.0
	scaleOpen   float32 = 0.5
)

// Segments of an indicator, individually animated:
//
//	    s1  s2
//	    _   _
//	s3 |     | s4
//
//	s5 |     | s6
//	    -   -
//	    s7  s8
type Segments struct {
	s [8]*Segment
}

func NewSegments(c color.Color) *Segments {
	return &Segments{s: [8]*Segment{
		NewSegment("s1", TopLeft, AxisHorizontal, c),
		NewSegment("s2", TopRight, AxisHorizontal, c),
		NewSegment("s3", TopLeft, AxisVertical, c),
		NewSegment("s4", TopRight, AxisVertical, c),
		NewSegment("s5", BottomLeft, AxisVertical, c),
		NewSegment("s6", BottomRight, AxisVertical, c),
		NewSegment("s7", BottomLeft, AxisHorizontal, c),
		NewSegment("s8", BottomRight, AxisHorizontal, c),
	}}
}

// All returns s1 through s8.
func (a *Segments) All() []*Segment { return a.s[:] }

func (a *Segments) TopEdge() (begin, end *Segment)    { return a.s[0], a.s[1] }
func (a *Segments) RightEdge() (begin, end *Segment)  { return a.s[3], a.s[5] }
func (a *Segments) BottomEdge() (begin, end *Segment) { return a.s[7], a.s[6] }
func (a *Segments) LeftEdge() (begin, end *Segment)   { return a.s[4], a.s[2] }

// Setup lays out segments as a closed rectangle of size (width, height),
// attaches them to parent, and opens them.
func (a *Segments) Setup(size f32.Vec2, parent *glw.Node) {
	// lines of perpendicular segments meet flush at corners
	const correction = Thickness / 2

	for _, s := range a.s {
		s.UpdateLength(size)
	}
	hlen := size[0] / 2
	vlen := size[1] / 2

	offsets := [8]f32.Vec3{
		{-(hlen/2 - correction), 0, -(vlen - correction)},
		{hlen/2 - correction, 0, -(vlen - correction)},
		{-hlen, 0, -vlen / 2},
		{hlen, 0, -vlen / 2},
		{-hlen, 0, vlen / 2},
		{hlen, 0, vlen / 2},
		{-(hlen/2 - correction), 0, vlen - correction},
		{hlen/2 - correction, 0, vlen - correction},
	}
	for i, s := range a.s {
		s.TranslateBy(offsets[i])
	}

	for _, s := range a.s {
		parent.AddChild(s.Node)
		s.Open()
	}
	parent.ScaleTo(f32.Vec3{scaleOpen, scaleOpen, scaleOpen})
}

func (a *Segments) Open() {
	for _, s := range a.s {
		s.Open()
	}
}

func (a *Segments) Close() {
	for _, s := range a.s {
		s.Close()
	}
}
