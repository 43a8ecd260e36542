package focus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"
)

func TestSmootherEmpty(t *testing.T) {
	var s Smoother
	if _, ok := s.Position(); ok {
		t.Error("empty smoother reported a position")
	}
	if s.Vote(AlignNone) {
		t.Error("none vote agreed with empty history")
	}
	if n := len(s.Alignments()); n != 0 {
		t.Errorf("none vote was recorded: %v votes", n)
	}
}

func TestSmootherPositionWindow(t *testing.T) {
	var s Smoother
	for i := 1; i <= 15; i++ {
		s.Push(f32.Vec3{float32(i), 0, -float32(i)})
		want := float32(i+1) / 2
		if i > positionWindow {
			want = float32(2*i-positionWindow+1) / 2
		}
		have, ok := s.Position()
		if !ok {
			t.Fatalf("push %v: no position", i)
		}
		if diff := cmp.Diff(f32.Vec3{want, 0, -want}, have, approx); diff != "" {
			t.Errorf("push %v: mean (-want +have):\n%s", i, diff)
		}
		if n := len(s.Positions()); n > positionWindow {
			t.Fatalf("push %v: %v positions retained", i, n)
		}
	}
	if have := s.Positions()[0]; have[0] != 6 {
		t.Errorf("oldest retained position %v, want x of 6", have)
	}
}

func TestSmootherPositionsCopy(t *testing.T) {
	var s Smoother
	s.Push(f32.Vec3{1, 2, 3})
	s.Positions()[0] = f32.Vec3{}
	if have, _ := s.Position(); have != (f32.Vec3{1, 2, 3}) {
		t.Errorf("history modified through copy: %v", have)
	}
}

func TestSmootherVoteWindow(t *testing.T) {
	var s Smoother
	for i := 0; i < 30; i++ {
		if !s.Vote(AlignHorizontal) {
			t.Fatalf("vote %v: horizontal disagreed with all horizontal history", i)
		}
		if n := len(s.Alignments()); n > alignmentWindow {
			t.Fatalf("vote %v: %v votes retained", i, n)
		}
	}
	if n := len(s.Alignments()); n != alignmentWindow {
		t.Errorf("%v votes retained, want %v", n, alignmentWindow)
	}
}

func TestSmootherVoteNoise(t *testing.T) {
	var s Smoother
	for i := 0; i < 100; i++ {
		candidate := AlignHorizontal
		if i%alignmentWindow == alignmentWindow-1 {
			candidate = AlignVertical
		}
		agree := s.Vote(candidate)
		if candidate == AlignVertical && agree {
			t.Fatalf("vote %v: single vertical vote agreed", i)
		}
		if candidate == AlignHorizontal && !agree {
			t.Fatalf("vote %v: horizontal vote disagreed", i)
		}
	}
}

func TestSmootherVoteTie(t *testing.T) {
	var s Smoother
	for i := 0; i < 10; i++ {
		s.Vote(AlignHorizontal)
	}
	for i := 0; i < 9; i++ {
		if s.Vote(AlignVertical) {
			t.Fatalf("vertical vote %v agreed with horizontal majority", i)
		}
	}
	if !s.Vote(AlignVertical) {
		t.Error("vertical vote disagreed at 10 to 10")
	}
	if s.HorizontalMajority() {
		t.Error("tie reported as horizontal majority")
	}
	if s.Vote(AlignHorizontal) {
		t.Error("horizontal vote agreed at 10 to 10")
	}
}

func TestSmootherVoteSwitch(t *testing.T) {
	var s Smoother
	for i := 0; i < alignmentWindow; i++ {
		s.Vote(AlignVertical)
	}
	// horizontal needs a strict majority of the window
	var n int
	for !s.Vote(AlignHorizontal) {
		n++
		if n > alignmentWindow {
			t.Fatal("horizontal never agreed")
		}
	}
	if n != 10 {
		t.Errorf("horizontal agreed after %v disagreeing votes, want 10", n)
	}
}
