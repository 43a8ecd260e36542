package glw

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"
)

func TestNodeHierarchy(t *testing.T) {
	root := NewNode("root")
	root.TranslateTo(f32.Vec3{0, 1, 0})
	root.RotateTo(math.Pi/2, f32.Vec3{1, 0, 0})

	mid := NewNode("mid")
	mid.ScaleTo(f32.Vec3{0.5, 0.5, 0.5})
	root.AddChild(mid)

	leaf := NewNode("leaf")
	leaf.TranslateTo(f32.Vec3{0, 0, -1})
	leaf.Color = color.White
	mid.AddChild(leaf)

	// -z in leaf space, halved, turned up toward +y, then lifted.
	want := f32.Vec3{0, 1.5, 0}
	if diff := cmp.Diff(want, leaf.ConvertToWorld(f32.Vec3{}), approx); diff != "" {
		t.Errorf("ConvertToWorld (-want +have):\n%s", diff)
	}

	var names []string
	root.Walk(func(n *Node, m f32.Mat4) {
		names = append(names, n.Name)
		if n == leaf {
			if diff := cmp.Diff(leaf.World16fv(), m, approx); diff != "" {
				t.Errorf("Walk matrix for leaf (-want +have):\n%s", diff)
			}
		}
	})
	if diff := cmp.Diff([]string{"root", "mid", "leaf"}, names); diff != "" {
		t.Errorf("Walk order (-want +have):\n%s", diff)
	}

	mid.Enabled = false
	names = names[:0]
	root.Walk(func(n *Node, _ f32.Mat4) { names = append(names, n.Name) })
	if diff := cmp.Diff([]string{"root"}, names); diff != "" {
		t.Errorf("Walk with disabled child (-want +have):\n%s", diff)
	}
}

func TestNodeReparent(t *testing.T) {
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	a.AddChild(c)
	b.AddChild(c)
	if len(a.Children()) != 0 {
		t.Errorf("a still has children %v", a.Children())
	}
	if c.Parent() != b || len(b.Children()) != 1 {
		t.Errorf("c not reparented to b")
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := RGBA(color.RGBA{R: 0xff, G: 0xff, A: 0xff})
	if r != 1 || g != 1 || b != 0 || a != 1 {
		t.Errorf("RGBA(yellow) = %v %v %v %v", r, g, b, a)
	}
}
