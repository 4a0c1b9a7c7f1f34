// Implements the rounding of the sharp corners of
// SVG paths: each corner between two straight lines is replaced
// by a quadratic curve approximating the arc of an inscribed circle.
package svground

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/svgcorner/svgpath"
)

var (
	// ErrDegenerate is returned when two points of a corner are the same,
	// so that its angle is not defined.
	ErrDegenerate = errors.New("degenerate corner")

	// ErrRadiusTooLarge is returned by the RejectRadius policy.
	ErrRadiusTooLarge = errors.New("radius too large for corner")

	// ErrInvalidRadius is returned for negative, infinite or NaN radii.
	ErrInvalidRadius = errors.New("radius must be a finite, non negative number")
)

// GeometryError reports a corner which can't be rounded.
type GeometryError struct {
	P1, P2, P3 svgpath.Point // P2 is the vertex
	Err        error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("corner (%g,%g) (%g,%g) (%g,%g): %s",
		e.P1.X, e.P1.Y, e.P2.X, e.P2.Y, e.P3.X, e.P3.Y, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// Policy decides what to do when the rounding of a corner
// would go further than half of one of its sides.
type Policy uint8

const (
	// Unguarded rounds with the requested radius anyway: the tangent
	// points may go past the neighbouring vertices.
	Unguarded Policy = iota
	// ClampRadius reduces the radius so that each tangent point stays
	// in the first half of its side.
	ClampRadius
	// RejectRadius fails with ErrRadiusTooLarge.
	RejectRadius
)

func (p Policy) String() string {
	switch p {
	case Unguarded:
		return "Unguarded"
	case ClampRadius:
		return "ClampRadius"
	case RejectRadius:
		return "RejectRadius"
	default:
		return "<unknown Policy>"
	}
}

// Options parametrizes the rounding.
type Options struct {
	Radius float64
	Policy Policy
}

// RoundCorners rounds the corners of `p` with the given radius,
// using the Unguarded policy.
func RoundCorners(p svgpath.Path, radius float64) (svgpath.Path, error) {
	return Options{Radius: radius}.Round(p)
}

// Round returns a new path where every corner between two consecutive
// line commands (L, H, V and their relative forms) is rounded.
// Corners involving curves, arcs, moves or closes are kept as is.
// `p` must start with a move command. A zero radius returns
// a copy of `p`.
func (o Options) Round(p svgpath.Path) (svgpath.Path, error) {
	if math.IsNaN(o.Radius) || math.IsInf(o.Radius, 0) || o.Radius < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, o.Radius)
	}
	subpaths, err := svgpath.SplitSubpaths(p)
	if err != nil {
		return nil, err
	}
	if o.Radius == 0 {
		return p.Copy(), nil
	}

	out := make(svgpath.Path, 0, len(p))
	var pen svgpath.Pen // shared by all the subpaths, for relative moves
	for _, subpath := range subpaths {
		out, pen, err = o.roundSubpath(out, pen, subpath)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// roundSubpath appends the rounded `subpath` to `out`, starting from `pen`,
// and returns the pen at the end of the subpath.
func (o Options) roundSubpath(out svgpath.Path, pen svgpath.Pen, subpath svgpath.Path) (svgpath.Path, svgpath.Pen, error) {
	out = append(out, subpath[0])
	pen = pen.Advance(subpath[0])
	if len(subpath) == 1 {
		return out, pen, nil
	}

	current := subpath[1]
	for i := 1; i < len(subpath); i++ {
		if i+1 < len(subpath) && svgpath.IsLine(current) && svgpath.IsLine(subpath[i+1]) {
			var (
				emitted []svgpath.Command
				empty   bool
				err     error
			)
			emitted, pen, current, empty, err = o.roundCorner(pen, current, subpath[i+1])
			if err != nil {
				return nil, pen, err
			}
			out = append(out, emitted...)
			if empty && canSkip(subpath, i+2) {
				// the curve ends on the next vertex: skip the empty line
				i++
				if i+1 < len(subpath) {
					current = subpath[i+1]
				}
			}
			continue
		}

		out = append(out, current)
		pen = pen.Advance(current)
		if i+1 < len(subpath) {
			current = subpath[i+1]
		}
	}
	return out, pen, nil
}

// negligible is the length, relative to its side, under which
// a line left between a side end and a tangent point is dropped.
const negligible = 1e-9

// canSkip returns true if removing a line placed before subpath[j]
// does not change how subpath[j] is drawn: a smooth curve reflects
// the control point of the previous command, and a line starting a
// new corner needs a non empty side.
func canSkip(subpath svgpath.Path, j int) bool {
	if j >= len(subpath) {
		return true
	}
	switch subpath[j].(type) {
	case svgpath.SmoothCubicTo, svgpath.SmoothCubicToRel, svgpath.SmoothQuadTo, svgpath.SmoothQuadToRel:
		return false
	}
	return !svgpath.IsLine(subpath[j])
}

// roundCorner rounds the corner between the lines `cmd` and `next`,
// drawn from `pen`. It returns the commands to emit, the pen after
// them, and the command to use instead of `next`, which now starts at
// the second tangent point. `empty` is true when this command has
// a negligible length.
func (o Options) roundCorner(pen svgpath.Pen, cmd, next svgpath.Command) (
	emitted []svgpath.Command, _ svgpath.Pen, rest svgpath.Command, empty bool, err error,
) {
	p1 := pen.Current
	vertex := pen.Advance(cmd)
	p2 := vertex.Current
	p3 := vertex.Endpoint(next)

	t1, t2, err := o.Corner(p1, p2, p3)
	if err != nil {
		return nil, pen, nil, false, err
	}
	if t1 == p2 && t2 == p2 { // flat corner, nothing to round
		return []svgpath.Command{cmd}, vertex, next, false, nil
	}

	// the curve starts from p1 if the tangent point is (almost) there
	start := p1
	if Distance(p1, t1) > negligible*Distance(p1, p2) {
		line := t1.Sub(p1)
		emitted = append(emitted, svgpath.LineToRel{DX: line.X, DY: line.Y})
		start = t1
	}
	ctrl, end := p2.Sub(start), t2.Sub(start)
	emitted = append(emitted, svgpath.QuadToRel{DX1: ctrl.X, DY1: ctrl.Y, DX: end.X, DY: end.Y})
	for _, c := range emitted {
		pen = pen.Advance(c)
	}

	d := p3.Sub(t2)
	empty = Distance(t2, p3) <= negligible*Distance(p2, p3)
	return emitted, pen, svgpath.LineToRel{DX: d.X, DY: d.Y}, empty, nil
}

// Corner returns the points where the circle of radius o.Radius,
// inscribed in the corner p1-p2-p3 (p2 being the vertex),
// touches the sides [p2, p1] and [p2, p3].
func (o Options) Corner(p1, p2, p3 svgpath.Point) (t1, t2 svgpath.Point, err error) {
	a, b, c := Distance(p1, p2), Distance(p2, p3), Distance(p1, p3)
	if a == 0 || b == 0 {
		return p2, p2, &GeometryError{P1: p1, P2: p2, P3: p3, Err: ErrDegenerate}
	}

	angle := LawOfCosines(a, b, c)
	// angle between a side and the line from the vertex to the circle center
	angle2 := math.Pi/2 - angle/2
	// distance between the vertex and the tangent points
	side := o.Radius * math.Tan(angle2)

	if limit := math.Min(a, b) / 2; side > limit {
		switch o.Policy {
		case ClampRadius:
			side = limit
		case RejectRadius:
			return p2, p2, &GeometryError{P1: p1, P2: p2, P3: p3, Err: ErrRadiusTooLarge}
		}
	}

	aCoef := (a - side) / a
	bCoef := (b - side) / b
	return ScaleVector(p1, p2, aCoef), ScaleVector(p3, p2, bCoef), nil
}
