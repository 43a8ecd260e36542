package glw

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// Quaternions are f32.Vec4 ordered as {w, x, y, z}.
// Matrices are f32.Mat4 in column-major order, as consumed by gl.UniformMatrix4fv.

var (
	// Up is the world up axis.
	Up = f32.Vec3{0, 1, 0}

	// Forward is the direction a camera looks along in its own space.
	Forward = f32.Vec3{0, 0, -1}
)

func Vec2(v0, v1 float32) f32.Vec2         { return f32.Vec2{v0, v1} }
func Vec3(v0, v1, v2 float32) f32.Vec3     { return f32.Vec3{v0, v1, v2} }
func Vec4(v0, v1, v2, v3 float32) f32.Vec4 { return f32.Vec4{v0, v1, v2, v3} }

// QuatIdent is the identity rotation.
func QuatIdent() f32.Vec4 { return f32.Vec4{1, 0, 0, 0} }

// Quat returns rotation of angle radians about unit axis.
func Quat(angle float32, axis f32.Vec3) f32.Vec4 {
	c, s := float32(math.Cos(float64(angle/2))), float32(math.Sin(float64(angle/2)))
	return f32.Vec4{c, axis[0] * s, axis[1] * s, axis[2] * s}
}

// QuatMul returns the hamilton product a*b; applied to a vector, b acts first.
func QuatMul(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		a[0]*b[0] - a[1]*b[1] - a[2]*b[2] - a[3]*b[3],
		a[2]*b[3] - b[2]*a[3] + a[0]*b[1] + b[0]*a[1],
		b[1]*a[3] - a[1]*b[3] + a[0]*b[2] + b[0]*a[2],
		a[1]*b[2] - b[1]*a[2] + a[0]*b[3] + b[0]*a[3],
	}
}

// QuatConj returns the conjugate of q; the inverse for unit quaternions.
func QuatConj(q f32.Vec4) f32.Vec4 { return f32.Vec4{q[0], -q[1], -q[2], -q[3]} }

// Act rotates v by unit quaternion q.
func Act(q f32.Vec4, v f32.Vec3) f32.Vec3 {
	u := f32.Vec3{q[1], q[2], q[3]}
	t := scale3fv(cross3fv(u, v), 2)
	return add3fv(add3fv(v, scale3fv(t, q[0])), cross3fv(u, t))
}

// Slerp spherically interpolates along the shortest arc from a to b by t.
func Slerp(a, b f32.Vec4, t float32) f32.Vec4 {
	d := dot4fv(a, b)
	if d < 0 {
		b, d = scale4fv(b, -1), -d
	}
	if d > 0.9995 {
		return norm4fv(lerp4fv(a, b, t))
	}
	theta := math.Acos(float64(d))
	sin := math.Sin(theta)
	wa := float32(math.Sin((1-float64(t))*theta) / sin)
	wb := float32(math.Sin(float64(t)*theta) / sin)
	return norm4fv(add4fv(scale4fv(a, wa), scale4fv(b, wb)))
}

// Yaw returns rotation about world up of q's forward direction projected onto
// the ground plane. Looking straight up or down, q's right direction is used instead.
func Yaw(q f32.Vec4) float32 {
	fwd := Act(q, Forward)
	if math.Hypot(float64(fwd[0]), float64(fwd[2])) < 1e-3 {
		right := Act(q, f32.Vec3{1, 0, 0})
		return float32(math.Atan2(float64(-right[2]), float64(right[0])))
	}
	return float32(math.Atan2(float64(-fwd[0]), float64(-fwd[2])))
}

func Add3fv(a, b f32.Vec3) f32.Vec3 { return add3fv(a, b) }
func Sub3fv(a, b f32.Vec3) f32.Vec3 { return sub3fv(a, b) }
func Dot3fv(a, b f32.Vec3) float32  { return dot3fv(a, b) }
func Len3fv(a f32.Vec3) float32     { return float32(math.Sqrt(float64(dot3fv(a, a)))) }

func Scale3fv(a f32.Vec3, s float32) f32.Vec3 { return scale3fv(a, s) }

func Norm3fv(a f32.Vec3) f32.Vec3 {
	n := Len3fv(a)
	if equals(n, 0) {
		return f32.Vec3{}
	}
	return scale3fv(a, 1/n)
}

func add3fv(a, b f32.Vec3) f32.Vec3 { return f32.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func sub3fv(a, b f32.Vec3) f32.Vec3 { return f32.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func dot3fv(a, b f32.Vec3) float32  { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func scale3fv(a f32.Vec3, s float32) f32.Vec3 { return f32.Vec3{a[0] * s, a[1] * s, a[2] * s} }

func mul3fv(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func cross3fv(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func lerp4fv(a, b f32.Vec4, t float32) f32.Vec4 {
	return f32.Vec4{
		a[0] + t*(b[0]-a[0]),
		a[1] + t*(b[1]-a[1]),
		a[2] + t*(b[2]-a[2]),
		a[3] + t*(b[3]-a[3]),
	}
}

func add4fv(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func scale4fv(a f32.Vec4, s float32) f32.Vec4 {
	return f32.Vec4{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

func dot4fv(a, b f32.Vec4) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3] }

func norm4fv(a f32.Vec4) f32.Vec4 {
	n := float32(math.Sqrt(float64(dot4fv(a, a))))
	if equals(n, 0) {
		return QuatIdent()
	}
	return scale4fv(a, 1/n)
}

func ident16fv() f32.Mat4 {
	return f32.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// trs16fv returns translate * rotate * scale.
func trs16fv(t f32.Vec3, q f32.Vec4, s f32.Vec3) f32.Mat4 {
	w, x, y, z := q[0], q[1], q[2], q[3]
	return f32.Mat4{
		s[0] * (1 - 2*(y*y+z*z)), s[0] * 2 * (x*y + w*z), s[0] * 2 * (x*z - w*y), 0,
		s[1] * 2 * (x*y - w*z), s[1] * (1 - 2*(x*x+z*z)), s[1] * 2 * (y*z + w*x), 0,
		s[2] * 2 * (x*z + w*y), s[2] * 2 * (y*z - w*x), s[2] * (1 - 2*(x*x+y*y)), 0,
		t[0], t[1], t[2], 1,
	}
}

// Mul16fv returns a*b.
func Mul16fv(a, b f32.Mat4) (m f32.Mat4) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[4*c+r] = a[r]*b[4*c] + a[4+r]*b[4*c+1] + a[8+r]*b[4*c+2] + a[12+r]*b[4*c+3]
		}
	}
	return m
}

// Point16fv transforms point p by m.
func Point16fv(m f32.Mat4, p f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}

// Perspective returns a projection matrix for vertical field of view fovy in radians.
func Perspective(fovy, aspect, near, far float32) f32.Mat4 {
	f := float32(1 / math.Tan(float64(fovy/2)))
	nf := 1 / (near - far)
	return f32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

func string16fv(a f32.Mat4) string {
	return fmt.Sprintf("%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f\n%+.2f %+.2f %+.2f %+.2f",
		a[0], a[4], a[8], a[12], a[1], a[5], a[9], a[13], a[2], a[6], a[10], a[14], a[3], a[7], a[11], a[15])
}

const epsilon = 0.0001

func equals(a, b float32) bool {
	return equaleps(a, b, epsilon)
}

func equaleps(a, b float32, eps float32) bool {
	return (a-b) < eps && (b-a) < eps
}
