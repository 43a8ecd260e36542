package focus

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/stat"
)

const (
	positionWindow  = 10
	alignmentWindow = 20
)

// Smoother keeps recent raycast positions and alignment votes of an
// indicator to remove jitter and single frame alignment flicker.
type Smoother struct {
	positions  []f32.Vec3
	alignments []Alignment
}

// Push appends a position, dropping the oldest beyond the window.
func (s *Smoother) Push(p f32.Vec3) {
	s.positions = suffix(append(s.positions, p), positionWindow)
}

// Position returns the mean of retained positions; false when none have been pushed.
func (s *Smoother) Position() (f32.Vec3, bool) {
	s.positions = suffix(s.positions, positionWindow)
	n := len(s.positions)
	if n == 0 {
		return f32.Vec3{}, false
	}
	axis := make([]float64, n)
	var mean f32.Vec3
	for i := range mean {
		for j, p := range s.positions {
			axis[j] = float64(p[i])
		}
		mean[i] = float32(stat.Mean(axis, nil))
	}
	return mean, true
}

// Vote records candidate and reports whether it agrees with the majority of
// recent votes. Ties go to vertical. AlignNone is not recorded and never agrees.
func (s *Smoother) Vote(candidate Alignment) bool {
	if candidate != AlignNone {
		s.alignments = append(s.alignments, candidate)
	}
	s.alignments = suffix(s.alignments, alignmentWindow)

	horizontal := s.HorizontalMajority()
	return (candidate == AlignHorizontal && horizontal) || (candidate == AlignVertical && !horizontal)
}

// HorizontalMajority reports whether strictly more than half of the retained
// votes are horizontal; a tie counts as vertical.
func (s *Smoother) HorizontalMajority() bool {
	var n int
	for _, a := range s.alignments {
		if a == AlignHorizontal {
			n++
		}
	}
	return float64(n) > float64(len(s.alignments))/2
}

// Positions returns a copy of retained positions, oldest first.
func (s *Smoother) Positions() []f32.Vec3 { return append([]f32.Vec3(nil), s.positions...) }

// Alignments returns a copy of retained votes, oldest first.
func (s *Smoother) Alignments() []Alignment { return append([]Alignment(nil), s.alignments...) }

// suffix returns the last n elements of xs.
func suffix[T any](xs []T, n int) []T {
	if len(xs) <= n {
		return xs
	}
	return append(xs[:0:0], xs[len(xs)-n:]...)
}
