package focus

import (
	"math"
	"testing"

	"dasa.cc/ar/glw"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"
)

var xaxis = f32.Vec3{1, 0, 0}

func TestCeilingCorrected(t *testing.T) {
	tests := []struct {
		angle     float32
		corrected bool
	}{
		{0, false},
		{math.Pi / 2, false},
		{2.6, false}, // up y ≈ -0.857
		{2.8, true},  // up y ≈ -0.942
		{math.Pi, true},
	}
	for _, tt := range tests {
		q := glw.Quat(tt.angle, xaxis)
		want := q
		if tt.corrected {
			want = glw.QuatMul(q, glw.Quat(math.Pi, glw.Up))
		}
		if diff := cmp.Diff(want, ceilingCorrected(q), approx); diff != "" {
			t.Errorf("angle %v: (-want +have):\n%s", tt.angle, diff)
		}
	}
}

func TestCandidateAlignment(t *testing.T) {
	ceiling := glw.Quat(math.Pi, xaxis)
	tests := []struct {
		name   string
		result RaycastResult
		want   Alignment
		rotate f32.Vec4
	}{
		{
			name:   "anchor wins over target alignment",
			result: RaycastResult{TargetAlignment: AlignHorizontal, Anchor: &Anchor{Alignment: AlignVertical}, Transform: glw.TransformIdent()},
			want:   AlignVertical,
			rotate: glw.QuatIdent(),
		},
		{
			name:   "anchored ceiling",
			result: RaycastResult{Anchor: &Anchor{Alignment: AlignHorizontal}, Transform: glw.Transform{Rotate: ceiling}},
			want:   AlignHorizontal,
			rotate: glw.QuatMul(ceiling, glw.Quat(math.Pi, glw.Up)),
		},
		{
			name:   "estimated ceiling is not corrected",
			result: RaycastResult{TargetAlignment: AlignHorizontal, Transform: glw.Transform{Rotate: ceiling}},
			want:   AlignHorizontal,
			rotate: ceiling,
		},
		{
			name:   "estimated without alignment",
			result: RaycastResult{Transform: glw.TransformIdent()},
			want:   AlignNone,
			rotate: glw.QuatIdent(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, q := candidateAlignment(tt.result)
			if a != tt.want {
				t.Errorf("have %v, want %v", a, tt.want)
			}
			if diff := cmp.Diff(tt.rotate, q, approx); diff != "" {
				t.Errorf("rotation (-want +have):\n%s", diff)
			}
		})
	}
}

func TestAlignStepConverges(t *testing.T) {
	q := glw.QuatIdent()
	target := glw.Quat(math.Pi, glw.Up)

	var steps int
	for more := true; more; steps++ {
		if steps > 100 {
			t.Fatal("did not converge in 100 steps")
		}
		q, more = alignStepTo(q, target)
	}
	if steps < 2 {
		t.Errorf("half turn finished in %v steps", steps)
	}
	if !aligned(q, target) {
		t.Errorf("final orientation %v not aligned with %v", q, target)
	}
}

func TestAligned(t *testing.T) {
	q := glw.Quat(1, f32.Vec3{0, 0, 1})
	if !aligned(q, glw.Vec4(-q[0], -q[1], -q[2], -q[3])) {
		t.Error("q and -q should be aligned")
	}
	if aligned(glw.QuatIdent(), glw.Quat(0.2, glw.Up)) {
		t.Error("0.2 radian difference reported aligned")
	}
}
