package focus

import (
	"math"

	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
)

const (
	// fraction of remaining rotation covered per frame
	alignStep float32 = 0.15

	// probe dot product above which orientations are considered equal
	alignDone float32 = 0.999

	// up vector y component below which a surface orientation reads upside down
	ceilingLimit float32 = -0.9
)

// alignProbe is a unit vector with equal components; comparing its image
// under two rotations avoids the sign ambiguity of comparing quaternions.
var alignProbe = f32.Vec3{
	float32(1 / math.Sqrt(3)),
	float32(1 / math.Sqrt(3)),
	float32(1 / math.Sqrt(3)),
}

// alignStepTo returns current moved toward target by one animation step and
// whether another step is needed.
func alignStepTo(current, target f32.Vec4) (f32.Vec4, bool) {
	next := glw.Slerp(current, target, alignStep)
	return next, !aligned(next, target)
}

func aligned(a, b f32.Vec4) bool {
	return glw.Dot3fv(glw.Act(a, alignProbe), glw.Act(b, alignProbe)) >= alignDone
}

// ceilingCorrected turns q half way around its up axis when q is upside
// down, as seen for planes detected on ceilings.
func ceilingCorrected(q f32.Vec4) f32.Vec4 {
	if glw.Act(q, glw.Up)[1] < ceilingLimit {
		return glw.QuatMul(q, glw.Quat(math.Pi, glw.Up))
	}
	return q
}

// candidateAlignment resolves the alignment a raycast result votes for and
// the orientation to animate toward.
func candidateAlignment(r RaycastResult) (Alignment, f32.Vec4) {
	target := r.Transform.Rotate
	switch {
	case r.Anchor != nil:
		return r.Anchor.Alignment, ceilingCorrected(target)
	case r.TargetAlignment == AlignHorizontal, r.TargetAlignment == AlignVertical:
		return r.TargetAlignment, target
	}
	return AlignNone, target
}
