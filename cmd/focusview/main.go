// Command focusview renders a focus indicator over a simulated room while
// the camera sways across a floor and wall. Touch to place a marker.
package main

import (
	"flag"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"time"

	"dasa.cc/ar/arsim"
	"dasa.cc/ar/focus"
	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"
)

var flagLog = flag.Bool("log", false, "prints indicator state transitions to stderr")

type Env struct {
	session *arsim.Session
	ind     *focus.Indicator

	scene   *glw.Node
	markers *glw.Node
	quads   glw.Quads
	proj    f32.Mat4

	start time.Time
}

func NewEnv() (*Env, error) {
	env := &Env{
		session: arsim.NewSession(),
		scene:   glw.NewNode("scene"),
		markers: glw.NewNode("markers"),
		proj:    glw.Perspective(math.Pi/3, 1, 0.05, 20),
	}
	env.session.Reconstruction = true
	env.session.MoveTo(f32.Vec3{0, 1.5, 0})

	floor := arsim.Floor("floor", 0, f32.Vec2{3, 3})
	wall := arsim.Wall("wall", f32.Vec3{0, 1.25, -3}, 0, f32.Vec2{3, 2.5})
	for _, p := range []arsim.Plane{floor, wall} {
		env.session.AddPlane(p)
		n := glw.NewNode(p.ID)
		n.Transform = p.Transform
		n.ScaleTo(f32.Vec3{p.Extent[0], 1, p.Extent[1]})
		n.Color = color.Gray{0x40}
		env.scene.AddChild(n)
	}

	opts := []func(*focus.Indicator){focus.Size(0.4, 0.25)}
	if *flagLog {
		opts = append(opts, focus.Logger(log.New(os.Stderr, "focus: ", log.Lmicroseconds)))
	}
	ind, err := focus.New(env.session, opts...)
	if err != nil {
		return nil, err
	}
	env.ind = ind
	env.scene.AddChild(ind.Node())
	env.scene.AddChild(env.markers)
	return env, nil
}

func (env *Env) Create() { env.quads.Create() }

func (env *Env) Layout(ev size.Event) {
	if ev.HeightPx != 0 {
		ar := float32(ev.WidthPx) / float32(ev.HeightPx)
		env.proj = glw.Perspective(math.Pi/3, ar, 0.05, 20)
	}
}

// Step sways the camera between floor and wall, then advances the session.
func (env *Env) Step(now time.Time) {
	if env.start.IsZero() {
		env.start = now
	}
	t := now.Sub(env.start).Seconds()
	yaw := float32(0.6 * math.Sin(t/3))
	pitch := float32(-0.5 + 0.45*math.Sin(t/5))
	env.session.Look(yaw, pitch)
	env.session.Step(now)
}

// Draw renders in scene order; surfaces first, then the indicator and markers over them.
func (env *Env) Draw() {
	cam, _, _ := env.session.CameraPose()
	env.quads.Draw(glw.Mul16fv(env.proj, cam.View16fv()), env.scene)
}

// Place drops a marker where the indicator rests.
func (env *Env) Place() {
	t, ok := env.ind.Placement()
	if !ok {
		return
	}
	n := glw.NewNode("marker")
	n.To(t)
	n.ScaleTo(f32.Vec3{0.1, 1, 0.1})
	n.Color = color.RGBA{R: 0x20, G: 0xa0, B: 0xff, A: 0xff}
	env.markers.AddChild(n)
	log.Printf("marker %v at %.2f", len(env.markers.Children()), t.Translate)
}

func (env *Env) Delete() { env.quads.Delete() }

func main() {
	flag.Parse()
	log.SetFlags(0)
	if !*flagLog {
		log.SetOutput(io.Discard)
	}

	env, err := NewEnv()
	if err != nil {
		log.Fatal(err)
	}

	app.Main(func(a app.App) {
		var glctx gl.Context
		for ev := range a.Events() {
			switch ev := a.Filter(ev).(type) {
			case lifecycle.Event:
				switch ev.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx = glw.With(ev.DrawContext.(gl.Context))
					env.Create()
				case lifecycle.CrossOff:
					env.Delete()
					glctx = glw.With(nil)
				}
			case size.Event:
				if glctx == nil {
					a.Send(ev)
				} else {
					env.Layout(ev)
					glctx.Viewport(0, 0, ev.WidthPx, ev.HeightPx)
				}
			case paint.Event:
				if glctx != nil {
					env.Step(time.Now())
					glctx.ClearColor(0, 0, 0, 1)
					glctx.Clear(gl.COLOR_BUFFER_BIT)
					env.Draw()
					a.Publish()
					a.Send(paint.Event{})
				}
			case touch.Event:
				if ev.Type == touch.TypeEnd {
					env.Place()
				}
			}
		}
	})
}
