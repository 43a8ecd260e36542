package focus

import (
	"fmt"
	"image/color"

	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
)

type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Axis is the direction a segment runs in on the indicator's plane.
type Axis uint8

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Reversed() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

const (
	// Thickness of segment lines in meters.
	Thickness float32 = 0.005

	defaultClosedLength float32 = 0.5
)

// Segment is one of the eight lines of an indicator, drawn as a unit quad
// scaled along its axis. Left and right run along x; up and down along -z and +z.
type Segment struct {
	*glw.Node

	corner       Corner
	axis         Axis
	closedLength float32
}

func NewSegment(name string, corner Corner, axis Axis, c color.Color) *Segment {
	s := &Segment{
		Node:         glw.NewNode(name),
		corner:       corner,
		axis:         axis,
		closedLength: defaultClosedLength,
	}
	s.Color = c
	switch axis {
	case AxisVertical:
		s.Scale = f32.Vec3{Thickness, 1, s.closedLength}
	default:
		s.Scale = f32.Vec3{s.closedLength, 1, Thickness}
	}
	return s
}

func (s *Segment) Corner() Corner { return s.corner }
func (s *Segment) Axis() Axis     { return s.axis }

func (s *Segment) ClosedLength() float32 { return s.closedLength }
func (s *Segment) OpenLength() float32   { return s.closedLength / 2 }

// OpenDirection is the way the segment slides when opening.
func (s *Segment) OpenDirection() Direction {
	switch {
	case s.corner == TopLeft && s.axis == AxisHorizontal:
		return Left
	case s.corner == TopLeft && s.axis == AxisVertical:
		return Up
	case s.corner == TopRight && s.axis == AxisHorizontal:
		return Right
	case s.corner == TopRight && s.axis == AxisVertical:
		return Up
	case s.corner == BottomLeft && s.axis == AxisHorizontal:
		return Left
	case s.corner == BottomLeft && s.axis == AxisVertical:
		return Down
	case s.corner == BottomRight && s.axis == AxisHorizontal:
		return Right
	case s.corner == BottomRight && s.axis == AxisVertical:
		return Down
	}
	panic(fmt.Errorf("no open direction for corner %v axis %v", s.corner, s.axis))
}

// UpdateLength sets the closed length to half the rectangle's width or
// height, depending on axis. Takes effect at the next Open or Close.
func (s *Segment) UpdateLength(size f32.Vec2) {
	if s.axis == AxisHorizontal {
		s.closedLength = size[0] / 2
	} else {
		s.closedLength = size[1] / 2
	}
}

func (s *Segment) length() float32 {
	if s.axis == AxisHorizontal {
		return s.Scale[0]
	}
	return s.Scale[2]
}

func (s *Segment) setLength(n float32) {
	if s.axis == AxisHorizontal {
		s.Scale[0] = n
	} else {
		s.Scale[2] = n
	}
}

func (s *Segment) Open() {
	s.setLength(s.OpenLength())
	offset := s.closedLength/2 - s.OpenLength()/2
	s.move(offset, s.OpenDirection())
}

func (s *Segment) Close() {
	old := s.length()
	s.setLength(s.closedLength)
	offset := s.closedLength/2 - old/2
	s.move(offset, s.OpenDirection().Reversed())
}

func (s *Segment) move(offset float32, d Direction) {
	switch d {
	case Left:
		s.Translate[0] -= offset
	case Right:
		s.Translate[0] += offset
	case Up:
		s.Translate[2] -= offset
	case Down:
		s.Translate[2] += offset
	}
}
