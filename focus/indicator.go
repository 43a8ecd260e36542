// Package focus implements a reticle that follows surfaces detected by an AR
// tracker. Eight line segments open while searching and close into a
// rectangle once a detected plane is under the camera's center.
package focus

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
)

type Phase uint8

const (
	// Initializing means no usable surface was found this frame.
	Initializing Phase = iota
	Tracking
)

func (p Phase) String() string {
	if p == Tracking {
		return "tracking"
	}
	return "initializing"
}

// State of an indicator; Result is only meaningful while Tracking.
type State struct {
	Phase  Phase
	Result RaycastResult
}

// Indicator is a focus reticle following a Tracker. It is updated from the
// tracker's per-frame subscription and must not be used concurrently.
type Indicator struct {
	tracker Tracker
	cancel  func()

	size   f32.Vec2
	color  color.Color
	logger *log.Logger

	// root holds position and orientation; positioning holds open/closed scale.
	root        *glw.Node
	positioning *glw.Node
	segments    *Segments

	camera    glw.Transform
	smoother  Smoother
	state     State
	alignment Alignment
	isOpen    bool
	changing  bool
}

// Size of the closed rectangle in meters.
func Size(width, height float32) func(*Indicator) {
	return func(ind *Indicator) { ind.size = f32.Vec2{width, height} }
}

func Color(c color.Color) func(*Indicator) {
	return func(ind *Indicator) { ind.color = c }
}

// Logger receives state transitions; discarded by default.
func Logger(l *log.Logger) func(*Indicator) {
	return func(ind *Indicator) { ind.logger = l }
}

// New returns an indicator subscribed to t's updates. Call Close to unsubscribe.
func New(t Tracker, options ...func(*Indicator)) (*Indicator, error) {
	if t == nil {
		return nil, errors.New("focus: nil tracker")
	}
	ind := &Indicator{
		tracker:     t,
		size:        f32.Vec2{0.5, 0.3},
		color:       color.RGBA{R: 0xff, G: 0xff, A: 0xff},
		logger:      log.New(io.Discard, "focus: ", 0),
		root:        glw.NewNode("FocusIndicator"),
		positioning: glw.NewNode("positioning"),
		camera:      glw.TransformIdent(),
		isOpen:      true,
	}
	for _, opt := range options {
		opt(ind)
	}
	if ind.size[0] <= 0 || ind.size[1] <= 0 {
		return nil, fmt.Errorf("focus: size must be positive, have %v", ind.size)
	}

	ind.root.RotateTo(math.Pi/2, f32.Vec3{1, 0, 0})
	ind.root.AddChild(ind.positioning)
	ind.segments = NewSegments(ind.color)
	ind.segments.Setup(ind.size, ind.positioning)

	ind.cancel = t.Subscribe(ind.Tick)
	return ind, nil
}

// Node returns the root of the indicator's scene graph for rendering.
func (ind *Indicator) Node() *glw.Node { return ind.root }

func (ind *Indicator) Segments() *Segments { return ind.segments }

func (ind *Indicator) State() State { return ind.state }

// Alignment is the decided surface alignment; AlignNone while searching.
func (ind *Indicator) Alignment() Alignment { return ind.alignment }

func (ind *Indicator) IsOpen() bool             { return ind.isOpen }
func (ind *Indicator) IsChangingAlignment() bool { return ind.changing }

// Position is the smoothed world position.
func (ind *Indicator) Position() f32.Vec3 { return ind.root.Translate }

// Orientation is the world orientation of the indicator's plane.
func (ind *Indicator) Orientation() f32.Vec4 { return ind.root.Rotate }

// LastPosition returns the position of the latest raycast hit while tracking.
func (ind *Indicator) LastPosition() (f32.Vec3, bool) {
	if ind.state.Phase != Tracking {
		return f32.Vec3{}, false
	}
	return ind.state.Result.Transform.Translate, true
}

// Placement returns a transform for placing content at the indicator,
// turned about world up to face the camera. False unless tracking.
func (ind *Indicator) Placement() (glw.Transform, bool) {
	if ind.state.Phase != Tracking {
		return glw.Transform{}, false
	}
	return glw.NewTransform(
		glw.TranslateTo(ind.root.Translate),
		glw.RotateTo(glw.Yaw(ind.camera.Rotate), glw.Up),
	), true
}

func (ind *Indicator) Hide()         { ind.root.Enabled = false }
func (ind *Indicator) Show()         { ind.root.Enabled = true }
func (ind *Indicator) Enabled() bool { return ind.root.Enabled }

// Close stops updates from the tracker. Subsequent calls have no effect.
func (ind *Indicator) Close() {
	if ind.cancel != nil {
		ind.cancel()
		ind.cancel = nil
	}
}

// Tick advances the indicator by one frame.
func (ind *Indicator) Tick(Update) {
	camera, quality, ok := ind.tracker.CameraPose()
	if ok {
		ind.camera = camera
	}
	var next State
	if ok && quality == QualityNormal {
		if r, hit := smartRaycast(ind.tracker, camera); hit {
			next = State{Phase: Tracking, Result: r}
		}
	}
	ind.state = ind.transition(ind.state, next)
}

// transition applies the side effects of moving from old to next and returns next.
func (ind *Indicator) transition(old, next State) State {
	switch next.Phase {
	case Initializing:
		ind.displayInactiveState()
		if old.Phase != Initializing {
			ind.logger.Printf("searching, alignment %v released", ind.alignment)
			ind.alignment = AlignNone
		}
		ind.setOpen(true)
	case Tracking:
		if old.Phase != Tracking {
			ind.logger.Printf("tracking target %v", next.Result.Target)
		}
		ind.setOpen(next.Result.Anchor == nil)
		ind.smoother.Push(next.Result.Transform.Translate)
		ind.updatePosition()
		ind.updateAlignment(next.Result)
	}
	return next
}

// displayInactiveState places the indicator one meter in front of the
// camera, turning to face it.
func (ind *Indicator) displayInactiveState() {
	// camera poses are rigid; scale is ignored
	front := glw.Add3fv(ind.camera.Translate, glw.Act(ind.camera.Rotate, glw.Forward))
	ind.smoother.Push(front)
	ind.updatePosition()

	facing := glw.QuatMul(ind.camera.Rotate, glw.Quat(math.Pi/2, f32.Vec3{1, 0, 0}))
	ind.performAlignmentAnimation(facing)
}

func (ind *Indicator) updatePosition() {
	if p, ok := ind.smoother.Position(); ok {
		ind.root.TranslateTo(p)
	}
}

func (ind *Indicator) updateAlignment(r RaycastResult) {
	candidate, target := candidateAlignment(r)
	if !ind.smoother.Vote(candidate) {
		if candidate == AlignNone {
			// no surface orientation to finish turning toward
			ind.changing = false
		}
		return
	}
	if candidate != ind.alignment {
		ind.logger.Printf("alignment %v -> %v", ind.alignment, candidate)
		ind.alignment = candidate
		ind.changing = true
	}
	if ind.changing {
		// advances a fraction per call; runs every frame until aligned
		ind.performAlignmentAnimation(target)
	} else {
		ind.root.Rotate = target
	}
}

func (ind *Indicator) performAlignmentAnimation(target f32.Vec4) {
	ind.root.Rotate, ind.changing = alignStepTo(ind.root.Rotate, target)
}

func (ind *Indicator) setOpen(open bool) {
	if ind.isOpen == open {
		return
	}
	ind.isOpen = open
	if open {
		ind.segments.Open()
		ind.positioning.ScaleTo(f32.Vec3{scaleOpen, scaleOpen, scaleOpen})
	} else {
		ind.segments.Close()
		ind.positioning.ScaleTo(f32.Vec3{scaleClosed, scaleClosed, scaleClosed})
	}
	ind.logger.Printf("open %v", open)
}
