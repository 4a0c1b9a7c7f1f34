package svgdraw

import (
	"math"

	"github.com/benoitkugler/svgcorner/svgpath"
)

// compute the bounding box of a path, taking into account
// the extrema of the bezier curves, not only their control points

// Box is an axis aligned rectangle.
type Box struct {
	Min, Max svgpath.Point
}

// emptyBox is the neutral element of union
var emptyBox = Box{
	Min: svgpath.Point{X: math.Inf(1), Y: math.Inf(1)},
	Max: svgpath.Point{X: math.Inf(-1), Y: math.Inf(-1)},
}

// IsEmpty returns true for the box of an empty path.
func (b Box) IsEmpty() bool { return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y }

// Union returns the smallest box containing `b` and `o`.
func (b Box) Union(o Box) Box {
	return Box{
		Min: svgpath.Point{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: svgpath.Point{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

func (b *Box) add(p svgpath.Point) {
	b.Min.X, b.Min.Y = math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)
	b.Max.X, b.Max.Y = math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)
}

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// bX + c : this is a simple line
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// boxer accumulates the extrema of the curves it receives
type boxer struct {
	box     *Box
	current svgpath.Point
}

// addCurve adds the points of `curve` at each t of `ts` in [0,1]
func (bx *boxer) addCurve(ts []float64, curve func(t float64) svgpath.Point) {
	for _, t := range ts {
		if 0 <= t && t <= 1 { // filter invalid value
			bx.box.add(curve(t))
		}
	}
}

func (bx *boxer) start(a svgpath.Point) {
	bx.box.add(a)
	bx.current = a
}

func (bx *boxer) line(b svgpath.Point) {
	bx.box.add(b)
	bx.current = b
}

func (bx *boxer) quad(b, c svgpath.Point) {
	p0 := bx.current
	aX, bX := quadraticDerivative(p0.X, b.X, c.X)
	aY, bY := quadraticDerivative(p0.Y, b.Y, c.Y)
	ts := append(linearRoots(aX, bX), linearRoots(aY, bY)...)
	bx.addCurve(ts, func(t float64) svgpath.Point {
		return svgpath.Point{X: bezierQuad(p0.X, b.X, c.X, t), Y: bezierQuad(p0.Y, b.Y, c.Y, t)}
	})
	bx.box.add(c)
	bx.current = c
}

func (bx *boxer) cube(b, c, d svgpath.Point) {
	p0 := bx.current
	aX, bX, cX := cubicDerivative(p0.X, b.X, c.X, d.X)
	aY, bY, cY := cubicDerivative(p0.Y, b.Y, c.Y, d.Y)
	ts := append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...)
	bx.addCurve(ts, func(t float64) svgpath.Point {
		return svgpath.Point{X: bezierSpline(p0.X, b.X, c.X, d.X, t), Y: bezierSpline(p0.Y, b.Y, c.Y, d.Y, t)}
	})
	bx.box.add(d)
	bx.current = d
}

func (bx *boxer) stop(bool) {}

// BoundingBox returns the smallest box containing the outline of `p`.
// The box of an empty path is empty (see Box.IsEmpty).
// Arcs are not supported.
func BoundingBox(p svgpath.Path) (Box, error) {
	box := emptyBox
	if err := replay(p, &boxer{box: &box}); err != nil {
		return Box{}, err
	}
	return box, nil
}
