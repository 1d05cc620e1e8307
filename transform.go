package vidgen

import "math"

// identityMatrix is the identity affine matrix.
var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is a drawable's local placement. Rotate is in radians.
type Transform struct {
	X, Y   float64
	Rotate float64
	Scale  float64
}

// Identity returns the transform that leaves points unchanged. It is the
// root transform every scene renders with.
func Identity() Transform {
	return Transform{Scale: 1}
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] for t.
//
// Composition order:
//
//	Scale -> Rotate -> Translate(X, Y)
func (t Transform) Matrix() [6]float64 {
	sin, cos := math.Sincos(t.Rotate)
	s := t.Scale
	return [6]float64{cos * s, sin * s, -sin * s, cos * s, t.X, t.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// TransformPoint applies an affine matrix to a point.
func TransformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// MatrixScale returns the uniform scale factor encoded in m. Non-uniform
// matrices return the geometric mean of the axis scales.
func MatrixScale(m [6]float64) float64 {
	sx := math.Hypot(m[0], m[1])
	sy := math.Hypot(m[2], m[3])
	return math.Sqrt(sx * sy)
}
