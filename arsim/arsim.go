// Package arsim simulates an AR tracking session: a camera moving through a
// room of planes that can be raycast against.
package arsim

import (
	"math"
	"sort"
	"time"

	"dasa.cc/ar/focus"
	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
)

// Plane is a flat surface; its local Y axis is the surface normal.
type Plane struct {
	ID        string
	Transform glw.Transform
	Alignment focus.Alignment

	// Extent along local X and Z; a zero component is unbounded.
	Extent f32.Vec2

	// Anchored planes are detected surfaces; others are estimates.
	Anchored bool
}

// Floor returns a detected horizontal plane at height y facing up.
func Floor(id string, y float32, extent f32.Vec2) Plane {
	return Plane{
		ID:        id,
		Transform: glw.NewTransform(glw.TranslateTo(f32.Vec3{0, y, 0})),
		Alignment: focus.AlignHorizontal,
		Extent:    extent,
		Anchored:  true,
	}
}

// Ceiling returns a detected horizontal plane at height y facing down.
func Ceiling(id string, y float32, extent f32.Vec2) Plane {
	return Plane{
		ID: id,
		Transform: glw.NewTransform(
			glw.TranslateTo(f32.Vec3{0, y, 0}),
			glw.RotateTo(math.Pi, f32.Vec3{1, 0, 0}),
		),
		Alignment: focus.AlignHorizontal,
		Extent:    extent,
		Anchored:  true,
	}
}

// Wall returns a detected vertical plane centered at c whose normal points
// along yaw radians from +Z.
func Wall(id string, c f32.Vec3, yaw float32, extent f32.Vec2) Plane {
	return Plane{
		ID: id,
		Transform: glw.NewTransform(
			glw.TranslateTo(c),
			glw.RotateTo(yaw, glw.Up),
			glw.RotateBy(math.Pi/2, f32.Vec3{1, 0, 0}),
		),
		Alignment: focus.AlignVertical,
		Extent:    extent,
		Anchored:  true,
	}
}

// Estimate returns p as an unanchored plane hypothesis.
func Estimate(p Plane) Plane {
	p.Anchored = false
	return p
}

func (p Plane) Normal() f32.Vec3 { return glw.Act(p.Transform.Rotate, glw.Up) }

// intersect returns distance along ray and hit point if the ray hits p within its extent.
func (p Plane) intersect(origin, dir f32.Vec3) (float32, f32.Vec3, bool) {
	n := p.Normal()
	denom := glw.Dot3fv(n, dir)
	if denom > -1e-6 && denom < 1e-6 {
		return 0, f32.Vec3{}, false
	}
	t := glw.Dot3fv(glw.Sub3fv(p.Transform.Translate, origin), n) / denom
	if t <= 0 {
		return 0, f32.Vec3{}, false
	}
	hit := glw.Add3fv(origin, glw.Scale3fv(dir, t))
	local := glw.Act(glw.QuatConj(p.Transform.Rotate), glw.Sub3fv(hit, p.Transform.Translate))
	if p.Extent[0] > 0 && abs(local[0]) > p.Extent[0]/2 {
		return 0, f32.Vec3{}, false
	}
	if p.Extent[1] > 0 && abs(local[2]) > p.Extent[1]/2 {
		return 0, f32.Vec3{}, false
	}
	return t, hit, true
}

type subscription struct {
	id int
	fn func(focus.Update)
}

// Session is a focus.Tracker driven by calls to Step. The zero value is not
// usable; see NewSession.
type Session struct {
	Camera  glw.Transform
	Quality focus.TrackingQuality

	// NoFrame simulates a session without a current frame.
	NoFrame bool

	// Reconstruction reports support for raycasting existing plane geometry.
	Reconstruction bool

	Planes []Plane

	subs  []subscription
	nsubs int
	last  time.Time
}

var _ focus.Tracker = (*Session)(nil)

func NewSession() *Session {
	return &Session{
		Camera:  glw.TransformIdent(),
		Quality: focus.QualityNormal,
	}
}

func (s *Session) AddPlane(p Plane) { s.Planes = append(s.Planes, p) }

// Look points the camera yaw radians about world up and pitch radians about its own X axis.
func (s *Session) Look(yaw, pitch float32) {
	s.Camera.Apply(glw.RotateTo(yaw, glw.Up), glw.RotateBy(pitch, f32.Vec3{1, 0, 0}))
}

func (s *Session) MoveTo(p f32.Vec3) { s.Camera.TranslateTo(p) }

func (s *Session) CameraPose() (glw.Transform, focus.TrackingQuality, bool) {
	if s.NoFrame {
		return glw.Transform{}, focus.QualityNotAvailable, false
	}
	return s.Camera, s.Quality, true
}

func (s *Session) SupportsSceneReconstruction() bool { return s.Reconstruction }

// Raycast returns hits nearest first. Geometry queries only consider anchored
// planes; estimated plane queries consider all planes.
func (s *Session) Raycast(q focus.RaycastQuery) []focus.RaycastResult {
	type hit struct {
		t float32
		r focus.RaycastResult
	}
	var hits []hit
	dir := glw.Norm3fv(q.Direction)
	for _, p := range s.Planes {
		if q.Alignment != focus.AlignNone && q.Alignment != p.Alignment {
			continue
		}
		if q.Target == focus.ExistingPlaneGeometry && !p.Anchored {
			continue
		}
		t, pt, ok := p.intersect(q.Origin, dir)
		if !ok {
			continue
		}
		r := focus.RaycastResult{
			Transform:       glw.NewTransform(glw.TranslateTo(pt)),
			Target:          q.Target,
			TargetAlignment: p.Alignment,
		}
		r.Transform.Rotate = p.Transform.Rotate
		if p.Anchored {
			r.Anchor = &focus.Anchor{ID: p.ID, Alignment: p.Alignment}
		}
		hits = append(hits, hit{t, r})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].t < hits[j].t })

	results := make([]focus.RaycastResult, len(hits))
	for i, h := range hits {
		results[i] = h.r
	}
	return results
}

func (s *Session) Subscribe(fn func(focus.Update)) (cancel func()) {
	s.nsubs++
	id := s.nsubs
	s.subs = append(s.subs, subscription{id, fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (s *Session) Subscribers() int { return len(s.subs) }

// Step delivers a frame update at now to all subscribers.
func (s *Session) Step(now time.Time) {
	var delta time.Duration
	if !s.last.IsZero() {
		delta = now.Sub(s.last)
	}
	s.last = now
	ev := focus.Update{Time: now, Delta: delta}
	for _, sub := range append([]subscription(nil), s.subs...) {
		sub.fn(ev)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
