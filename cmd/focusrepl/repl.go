package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"dasa.cc/ar/arsim"
	"dasa.cc/ar/focus"
	"dasa.cc/ar/glw"
	"golang.org/x/image/math/f32"
)

const deg = math.Pi / 180

var errQuit = errors.New("quit")

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

type repl struct {
	session *arsim.Session
	ind     *focus.Indicator
	out     io.Writer

	now   time.Time
	frame time.Duration

	cmds  []command
	index *index
	nid   int
}

func newRepl(out io.Writer, frame time.Duration, options ...func(*focus.Indicator)) (*repl, error) {
	r := &repl{
		session: arsim.NewSession(),
		out:     out,
		now:     time.Unix(0, 0),
		frame:   frame,
	}
	ind, err := focus.New(r.session, options...)
	if err != nil {
		return nil, err
	}
	r.ind = ind

	r.cmds = []command{
		{"floor", "floor y [width depth]", r.floor},
		{"ceiling", "ceiling y [width depth]", r.ceiling},
		{"wall", "wall x y z yaw [width height]", r.wall},
		{"estimate", "estimate y", r.estimate},
		{"planes", "planes", r.planes},
		{"clear", "clear", r.clear},
		{"look", "look yaw pitch", r.look},
		{"move", "move x y z", r.move},
		{"quality", "quality none|limited|normal", r.quality},
		{"frame", "frame on|off", r.frameOn},
		{"mesh", "mesh on|off", r.mesh},
		{"tick", "tick [n]", r.tick},
		{"state", "state", r.state},
		{"place", "place", r.place},
		{"hide", "hide", func([]string) error { r.ind.Hide(); return nil }},
		{"show", "show", func([]string) error { r.ind.Show(); return nil }},
		{"help", "help", r.help},
		{"quit", "quit", func([]string) error { return errQuit }},
	}
	names := make([]string, len(r.cmds))
	for i, c := range r.cmds {
		names[i] = c.name
	}
	r.index = newIndex(names...)
	return r, nil
}

// exec runs a single line of input; errQuit ends the session.
func (r *repl) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]
	for _, c := range r.cmds {
		if c.name == name {
			err := c.run(args)
			if err != nil && err != errQuit {
				err = fmt.Errorf("%s: %w", c.usage, err)
			}
			return err
		}
	}
	if m := r.index.match(name, 0.33); len(m) > 0 {
		return fmt.Errorf("unknown command %q, did you mean %s?", name, m[0])
	}
	return fmt.Errorf("unknown command %q", name)
}

func (r *repl) close() { r.ind.Close() }

func (r *repl) id(prefix string) string {
	r.nid++
	return fmt.Sprintf("%s%v", prefix, r.nid)
}

func (r *repl) floor(args []string) error {
	xs, err := floats(args, 1)
	if err != nil {
		return err
	}
	r.session.AddPlane(arsim.Floor(r.id("floor"), xs[0], extent(xs[1:])))
	return nil
}

func (r *repl) ceiling(args []string) error {
	xs, err := floats(args, 1)
	if err != nil {
		return err
	}
	r.session.AddPlane(arsim.Ceiling(r.id("ceiling"), xs[0], extent(xs[1:])))
	return nil
}

func (r *repl) wall(args []string) error {
	xs, err := floats(args, 4)
	if err != nil {
		return err
	}
	c := f32.Vec3{xs[0], xs[1], xs[2]}
	r.session.AddPlane(arsim.Wall(r.id("wall"), c, xs[3]*deg, extent(xs[4:])))
	return nil
}

func (r *repl) estimate(args []string) error {
	xs, err := floats(args, 1)
	if err != nil {
		return err
	}
	r.session.AddPlane(arsim.Estimate(arsim.Floor(r.id("estimate"), xs[0], f32.Vec2{})))
	return nil
}

func (r *repl) planes([]string) error {
	for _, p := range r.session.Planes {
		fmt.Fprintf(r.out, "%s %v anchored=%v at %.2f normal %.2f\n",
			p.ID, p.Alignment, p.Anchored, p.Transform.Translate, p.Normal())
	}
	return nil
}

func (r *repl) clear([]string) error {
	r.session.Planes = nil
	return nil
}

func (r *repl) look(args []string) error {
	xs, err := floats(args, 2)
	if err != nil {
		return err
	}
	r.session.Look(xs[0]*deg, xs[1]*deg)
	return nil
}

func (r *repl) move(args []string) error {
	xs, err := floats(args, 3)
	if err != nil {
		return err
	}
	r.session.MoveTo(f32.Vec3{xs[0], xs[1], xs[2]})
	return nil
}

func (r *repl) quality(args []string) error {
	if len(args) != 1 {
		return errors.New("want one argument")
	}
	switch args[0] {
	case "none":
		r.session.Quality = focus.QualityNotAvailable
	case "limited":
		r.session.Quality = focus.QualityLimited
	case "normal":
		r.session.Quality = focus.QualityNormal
	default:
		return fmt.Errorf("unknown quality %q", args[0])
	}
	return nil
}

func (r *repl) frameOn(args []string) error {
	on, err := toggle(args)
	if err != nil {
		return err
	}
	r.session.NoFrame = !on
	return nil
}

func (r *repl) mesh(args []string) error {
	on, err := toggle(args)
	if err != nil {
		return err
	}
	r.session.Reconstruction = on
	return nil
}

func (r *repl) tick(args []string) error {
	n := 1
	if len(args) > 0 {
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		r.now = r.now.Add(r.frame)
		r.session.Step(r.now)
	}
	return r.state(nil)
}

func (r *repl) state([]string) error {
	st := r.ind.State()
	fmt.Fprintf(r.out, "%v alignment=%v open=%v changing=%v position=%.3f\n",
		st.Phase, r.ind.Alignment(), r.ind.IsOpen(), r.ind.IsChangingAlignment(), r.ind.Position())
	if st.Phase == focus.Tracking {
		fmt.Fprintf(r.out, "hit %v at %.3f", st.Result.Target, st.Result.Transform.Translate)
		if a := st.Result.Anchor; a != nil {
			fmt.Fprintf(r.out, " anchor %s", a.ID)
		}
		fmt.Fprintln(r.out)
	}
	return nil
}

func (r *repl) place([]string) error {
	t, ok := r.ind.Placement()
	if !ok {
		return errors.New("no surface to place on")
	}
	fmt.Fprintf(r.out, "placed at %.3f facing %.1f°\n", t.Translate, glw.Yaw(t.Rotate)/deg)
	return nil
}

func (r *repl) help([]string) error {
	for _, c := range r.cmds {
		fmt.Fprintln(r.out, c.usage)
	}
	return nil
}

// floats parses args as numbers, requiring at least n.
func floats(args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, fmt.Errorf("want %v numbers, have %v", n, len(args))
	}
	xs := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, err
		}
		xs[i] = float32(f)
	}
	return xs, nil
}

func extent(xs []float32) f32.Vec2 {
	if len(xs) < 2 {
		return f32.Vec2{}
	}
	return f32.Vec2{xs[0], xs[1]}
}

func toggle(args []string) (bool, error) {
	if len(args) == 1 {
		switch args[0] {
		case "on":
			return true, nil
		case "off":
			return false, nil
		}
	}
	return false, errors.New("want on or off")
}
