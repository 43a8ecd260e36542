package glw

import (
	"image/color"

	"golang.org/x/image/math/f32"
)

// Node is an element of a scene graph. Nodes with a Color are drawn
// as unit quads on their local XZ plane.
type Node struct {
	Transform

	Name    string
	Color   color.Color
	Enabled bool

	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{Transform: TransformIdent(), Name: name, Enabled: true}
}

// AddChild reparents c under n.
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) RemoveChild(c *Node) {
	for i, x := range n.children {
		if x == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// World16fv returns the model matrix of n including all parents.
func (n *Node) World16fv() f32.Mat4 {
	m := n.Eval16fv()
	for p := n.parent; p != nil; p = p.parent {
		m = Mul16fv(p.Eval16fv(), m)
	}
	return m
}

// ConvertToWorld returns local point p in world space.
func (n *Node) ConvertToWorld(p f32.Vec3) f32.Vec3 { return Point16fv(n.World16fv(), p) }

// Walk calls fn for n and every enabled descendant with its model matrix.
// Disabled nodes and their descendants are skipped.
func (n *Node) Walk(fn func(*Node, f32.Mat4)) {
	var m f32.Mat4
	if n.parent != nil {
		m = n.parent.World16fv()
	} else {
		m = ident16fv()
	}
	n.walk(m, fn)
}

func (n *Node) walk(parent f32.Mat4, fn func(*Node, f32.Mat4)) {
	if !n.Enabled {
		return
	}
	m := Mul16fv(parent, n.Eval16fv())
	fn(n, m)
	for _, c := range n.children {
		c.walk(m, fn)
	}
}

func RGBA(c color.Color) (r, g, b, a float32) {
	ur, ug, ub, ua := c.RGBA()
	return float32(ur>>8) / 255, float32(ug>>8) / 255, float32(ub>>8) / 255, float32(ua>>8) / 255
}
