package glw

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/mobile/gl"
)

const quadVert = `#version 100
uniform mat4 mvp;
attribute vec3 pos;

void main() {
	gl_Position = mvp * vec4(pos, 1.0);
}`

const quadFrag = `#version 100
precision mediump float;
uniform vec4 color;

void main() {
	gl_FragColor = color;
}`

// Quads draws colored nodes of a scene graph as unit quads.
type Quads struct {
	prg   Program
	mvp   gl.Uniform
	color gl.Uniform
	pos   gl.Attrib
	verts FloatBuffer
}

func (q *Quads) Create() {
	q.prg.MustBuild(quadVert, quadFrag)
	q.mvp = q.prg.Uniform("mvp")
	q.color = q.prg.Uniform("color")
	q.pos = q.prg.Attrib("pos")
	q.verts.Create(gl.STATIC_DRAW, 3, []float32{
		-0.5, 0, -0.5,
		+0.5, 0, -0.5,
		+0.5, 0, +0.5,
		-0.5, 0, +0.5,
	})
}

// Draw walks root and draws every enabled node that has a Color.
func (q *Quads) Draw(viewproj f32.Mat4, root *Node) {
	q.prg.Use()
	q.verts.Bind()
	ctx.EnableVertexAttribArray(q.pos)
	ctx.VertexAttribPointer(q.pos, 3, gl.FLOAT, false, 0, 0)
	root.Walk(func(n *Node, model f32.Mat4) {
		if n.Color == nil {
			return
		}
		m := Mul16fv(viewproj, model)
		ctx.UniformMatrix4fv(q.mvp, m[:])
		r, g, b, a := RGBA(n.Color)
		ctx.Uniform4f(q.color, r, g, b, a)
		q.verts.Draw(gl.TRIANGLE_FAN)
	})
	ctx.DisableVertexAttribArray(q.pos)
	q.verts.Unbind()
}

func (q *Quads) Delete() {
	q.verts.Delete()
	q.prg.Delete()
}
