//go:build plot

package focus

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"dasa.cc/ar/glw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

type plttr struct {
	*plot.Plot
	nlines int
}

func newplttr(title string) *plttr {
	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())
	return &plttr{Plot: p}
}

func (p *plttr) addLine(lbl string, xys plotter.XYs) {
	ln, err := plotter.NewLine(xys)
	if err != nil {
		panic(err)
	}
	ln.LineStyle.Width = vg.Points(2)
	ln.LineStyle.Color = plotutil.Color(p.nlines)
	p.nlines++
	p.Add(ln)
	p.Legend.Add(lbl, ln)
}

// addSegments outlines each segment's quad as seen from above, flipping z
// so up on the indicator is up on the plot.
func (p *plttr) addSegments(lbl string, segs *Segments) {
	c := plotutil.Color(p.nlines)
	p.nlines++
	for i, s := range segs.All() {
		hx, hz := s.Scale[0]/2, s.Scale[2]/2
		x0, x1 := float64(s.Translate[0]-hx), float64(s.Translate[0]+hx)
		y0, y1 := float64(-(s.Translate[2] - hz)), float64(-(s.Translate[2] + hz))
		ln, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}})
		if err != nil {
			panic(err)
		}
		ln.LineStyle.Color = c
		p.Add(ln)
		if i == 0 {
			p.Legend.Add(lbl, ln)
		}
	}
}

func (p *plttr) save(fname string) {
	if err := p.Save(8*vg.Inch, 8*vg.Inch, fname); err != nil {
		panic(err)
	}
}

func TestPlotSegments(t *testing.T) {
	p := newplttr("segments")
	p.X.Min, p.X.Max = -0.3, 0.3
	p.Y.Min, p.Y.Max = -0.3, 0.3

	segs := NewSegments(color.White)
	segs.Setup(glw.Vec2(0.5, 0.3), glw.NewNode("parent"))
	p.addSegments("open", segs)
	segs.Close()
	p.addSegments("closed", segs)
	p.save("segments.png")
}

func TestPlotAlignment(t *testing.T) {
	p := newplttr("alignment animation")
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "radians remaining"

	for _, angle := range []float32{math.Pi / 4, math.Pi / 2, math.Pi} {
		target := glw.Quat(angle, glw.Up)
		q := glw.QuatIdent()
		var xys plotter.XYs
		for i, more := 0, true; more; i++ {
			d := math.Abs(float64(q[0]*target[0] + q[1]*target[1] + q[2]*target[2] + q[3]*target[3]))
			xys = append(xys, plotter.XY{X: float64(i), Y: 2 * math.Acos(math.Min(d, 1))})
			q, more = alignStepTo(q, target)
		}
		p.addLine(fmt.Sprintf("%.2f", angle), xys)
		t.Logf("%.2f radians aligned in %v frames", angle, len(xys))
	}
	p.save("alignment.png")
}
