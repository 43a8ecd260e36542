package glw

import (
	"golang.org/x/image/math/f32"
)

type Transformer interface {
	To(Transform)
	TranslateBy(f32.Vec3)
	TranslateTo(f32.Vec3)
	ScaleBy(f32.Vec3)
	ScaleTo(f32.Vec3)
	RotateBy(angle float32, axis f32.Vec3)
	RotateTo(angle float32, axis f32.Vec3)
}

var _ Transformer = (*Transform)(nil)

func To(t Transform) func(Transformer) { return func(a Transformer) { a.To(t) } }

func TranslateBy(v f32.Vec3) func(Transformer) { return func(a Transformer) { a.TranslateBy(v) } }
func TranslateTo(v f32.Vec3) func(Transformer) { return func(a Transformer) { a.TranslateTo(v) } }

func ScaleBy(v f32.Vec3) func(Transformer) { return func(a Transformer) { a.ScaleBy(v) } }
func ScaleTo(v f32.Vec3) func(Transformer) { return func(a Transformer) { a.ScaleTo(v) } }

func RotateBy(angle float32, axis f32.Vec3) func(Transformer) {
	return func(a Transformer) { a.RotateBy(angle, axis) }
}

func RotateTo(angle float32, axis f32.Vec3) func(Transformer) {
	return func(a Transformer) { a.RotateTo(angle, axis) }
}

// Transform is a translation, rotation, and scale applied in that order
// to the right of any parent transform.
type Transform struct {
	Translate f32.Vec3
	Scale     f32.Vec3
	Rotate    f32.Vec4
}

func TransformIdent() Transform {
	return Transform{
		Translate: f32.Vec3{0, 0, 0},
		Scale:     f32.Vec3{1, 1, 1},
		Rotate:    QuatIdent(),
	}
}

// NewTransform returns identity with transforms applied.
func NewTransform(transforms ...func(Transformer)) Transform {
	a := TransformIdent()
	a.Apply(transforms...)
	return a
}

func (a *Transform) Apply(transforms ...func(Transformer)) {
	for _, fn := range transforms {
		fn(a)
	}
}

func (a *Transform) To(t Transform) { *a = t }

func (a *Transform) TranslateBy(v f32.Vec3) { a.Translate = add3fv(a.Translate, v) }
func (a *Transform) TranslateTo(v f32.Vec3) { a.Translate = v }

func (a *Transform) ScaleBy(v f32.Vec3) { a.Scale = mul3fv(a.Scale, v) }
func (a *Transform) ScaleTo(v f32.Vec3) { a.Scale = v }

// RotateBy rotates about axis in local space.
func (a *Transform) RotateBy(angle float32, axis f32.Vec3) {
	a.Rotate = norm4fv(QuatMul(a.Rotate, Quat(angle, axis)))
}

func (a *Transform) RotateTo(angle float32, axis f32.Vec3) {
	a.Rotate = norm4fv(Quat(angle, axis))
}

func (a Transform) Eval16fv() f32.Mat4 {
	return trs16fv(a.Translate, a.Rotate, a.Scale)
}

// Convert returns local point p in parent space.
func (a Transform) Convert(p f32.Vec3) f32.Vec3 {
	return add3fv(a.Translate, Act(a.Rotate, mul3fv(a.Scale, p)))
}

// View16fv returns the inverse of a rigid transform, ignoring scale.
func (a Transform) View16fv() f32.Mat4 {
	r := QuatConj(a.Rotate)
	t := scale3fv(Act(r, a.Translate), -1)
	return trs16fv(t, r, f32.Vec3{1, 1, 1})
}

func (a Transform) String() string { return string16fv(a.Eval16fv()) }
