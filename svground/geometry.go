package svground

import (
	"math"

	"github.com/benoitkugler/svgcorner/svgpath"
	"seehuhn.de/go/geom/vec"
)

func toVec(p svgpath.Point) vec.Vec2 { return vec.Vec2{X: p.X, Y: p.Y} }

func fromVec(v vec.Vec2) svgpath.Point { return svgpath.Point{X: v.X, Y: v.Y} }

// Distance is the euclidean distance between p and q.
// It only returns 0 for equal points, even at tiny scales.
func Distance(p, q svgpath.Point) float64 {
	d := toVec(q).Sub(toVec(p))
	return math.Hypot(d.X, d.Y)
}

// LawOfCosines returns the angle (in radians) opposite to the side `c`
// in a triangle with sides `a`, `b` and `c`. The cosine is clamped
// to [-1, 1] to absorb rounding errors on flat triangles.
// `a` and `b` must not be zero.
func LawOfCosines(a, b, c float64) float64 {
	// the angle does not depend on the scale: normalize so
	// that the squares can't underflow or overflow
	m := math.Max(a, math.Max(b, c))
	a, b, c = a/m, b/m, c/m
	cos := (a*a + b*b - c*c) / (2 * a * b)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos)
}

// ScaleVector scales the vector from `anchor` to `point` by `factor`,
// keeping `anchor` fixed, and returns its new end.
// In other words, `point` moves toward `anchor` by (1 - factor) of
// their distance.
func ScaleVector(anchor, point svgpath.Point, factor float64) svgpath.Point {
	p := toVec(point)
	d := p.Sub(toVec(anchor))
	return fromVec(p.Sub(d.Mul(1 - factor)))
}
