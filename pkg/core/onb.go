package core

import "math"

// ONB is an orthonormal basis derived from a surface normal.
// W points along the normal.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis whose W axis aligns with n
func NewONB(n Vec3) ONB {
	w := n.Normalize()
	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = Vec3{Y: 1}
	} else {
		a = Vec3{X: 1}
	}
	v := w.Cross(a).Normalize()
	u := w.Cross(v)
	return ONB{U: u, V: v, W: w}
}

// Transform maps basis-local coordinates into world space
func (o ONB) Transform(vec Vec3) Vec3 {
	return o.U.Multiply(vec.X).
		Add(o.V.Multiply(vec.Y)).
		Add(o.W.Multiply(vec.Z))
}
