package focus

import (
	"time"

	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
)

// Alignment of a detected surface. The zero value is used both for an
// unknown raycast target alignment and for an undecided indicator alignment.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignHorizontal
	AlignVertical
)

func (a Alignment) String() string {
	switch a {
	case AlignHorizontal:
		return "horizontal"
	case AlignVertical:
		return "vertical"
	default:
		return "none"
	}
}

// Target is the kind of surface a raycast may hit.
type Target uint8

const (
	// ExistingPlaneGeometry hits detected planes within their measured extent.
	// Requires scene reconstruction support.
	ExistingPlaneGeometry Target = iota + 1

	// EstimatedPlane hits plane hypotheses that may not be anchored.
	EstimatedPlane
)

func (t Target) String() string {
	switch t {
	case ExistingPlaneGeometry:
		return "existing plane geometry"
	case EstimatedPlane:
		return "estimated plane"
	default:
		return "none"
	}
}

type TrackingQuality uint8

const (
	QualityNotAvailable TrackingQuality = iota
	QualityLimited
	QualityNormal
)

// Anchor is a detected surface registered by the tracker.
type Anchor struct {
	ID        string
	Alignment Alignment
}

type RaycastQuery struct {
	Origin    f32.Vec3
	Direction f32.Vec3
	Target    Target
	Alignment Alignment
}

type RaycastResult struct {
	// Transform places the hit in world space; the rotated Y axis is the surface normal.
	Transform       glw.Transform
	Target          Target
	TargetAlignment Alignment

	// Anchor is nil unless the hit is on a detected surface.
	Anchor *Anchor
}

// Update is delivered once per rendered frame.
type Update struct {
	Time  time.Time
	Delta time.Duration
}

// Tracker is the AR session an Indicator follows. Calls are made from the
// goroutine delivering updates.
type Tracker interface {
	// CameraPose reports false when no frame is available.
	CameraPose() (glw.Transform, TrackingQuality, bool)

	// Raycast returns results in no particular order.
	Raycast(RaycastQuery) []RaycastResult

	SupportsSceneReconstruction() bool

	// Subscribe registers fn for per-frame updates until cancel is called.
	Subscribe(fn func(Update)) (cancel func())
}

// smartRaycast casts along the camera's view direction and prefers hits on
// existing plane geometry over estimated planes.
func smartRaycast(t Tracker, camera glw.Transform) (RaycastResult, bool) {
	q := RaycastQuery{
		Origin:    camera.Translate,
		Direction: glw.Act(camera.Rotate, glw.Forward),
		Target:    EstimatedPlane,
		Alignment: AlignNone,
	}
	if t.SupportsSceneReconstruction() {
		q.Target = ExistingPlaneGeometry
	}
	results := t.Raycast(q)
	for _, r := range results {
		if r.Target == ExistingPlaneGeometry {
			return r, true
		}
	}
	for _, r := range results {
		if r.Target == EstimatedPlane {
			return r, true
		}
	}
	return RaycastResult{}, false
}
