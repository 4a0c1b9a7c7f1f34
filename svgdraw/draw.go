// Given a parsed SVG path, implements how to
// replay it on a drawing backend.
// Relative and smooth commands are resolved, so that the backend
// only receives absolute lines and bezier curves.
package svgdraw

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgcorner/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrArcUnsupported is returned for paths containing arcs,
// which drawers can't represent.
var ErrArcUnsupported = errors.New("elliptical arcs are not supported")

// drawer knows how to do the actual draw operations.
type drawer interface {
	start(a svgpath.Point)
	line(b svgpath.Point)
	quad(b, c svgpath.Point)
	cube(b, c, d svgpath.Point)
	stop(closeLoop bool)
}

// replay resolves the commands of `p` and sends them to `d`.
func replay(p svgpath.Path, d drawer) error {
	var pen svgpath.Pen
	open := false // a curve has been started and not stopped
	for i, c := range p {
		next := pen.Advance(c)
		abs := pen.Absolute(c)

		switch abs.(type) {
		case svgpath.MoveTo, svgpath.Close:
		default:
			if !open { // drawing after a close starts from the subpath start
				d.start(pen.Current)
				open = true
			}
		}

		switch abs := abs.(type) {
		case svgpath.MoveTo:
			if open {
				d.stop(false) // implicit close if currently in path.
			}
			d.start(next.Current)
			open = true
		case svgpath.LineTo, svgpath.HLineTo, svgpath.VLineTo:
			d.line(next.Current)
		case svgpath.QuadTo:
			d.quad(svgpath.Point{X: abs.X1, Y: abs.Y1}, next.Current)
		case svgpath.SmoothQuadTo:
			d.quad(pen.SmoothQuadControl(), next.Current)
		case svgpath.CubicTo:
			d.cube(svgpath.Point{X: abs.X1, Y: abs.Y1}, svgpath.Point{X: abs.X2, Y: abs.Y2}, next.Current)
		case svgpath.SmoothCubicTo:
			d.cube(pen.SmoothCubicControl(), svgpath.Point{X: abs.X2, Y: abs.Y2}, next.Current)
		case svgpath.Close:
			if open {
				d.stop(true)
				open = false
			}
		case svgpath.ArcTo:
			return fmt.Errorf("command %d (%c): %w", i, c.Code(), ErrArcUnsupported)
		}
		pen = next
	}
	if open {
		d.stop(false)
	}
	return nil
}

func toFixed(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// adder wraps a rasterx.Adder, converting to fixed points.
type adder struct{ q rasterx.Adder }

func (a adder) start(p svgpath.Point)   { a.q.Start(toFixed(p)) }
func (a adder) line(b svgpath.Point)    { a.q.Line(toFixed(b)) }
func (a adder) quad(b, c svgpath.Point) { a.q.QuadBezier(toFixed(b), toFixed(c)) }
func (a adder) cube(b, c, d svgpath.Point) {
	a.q.CubeBezier(toFixed(b), toFixed(c), toFixed(d))
}
func (a adder) stop(closeLoop bool) { a.q.Stop(closeLoop) }

// AddTo adds the path `p` to `q`, such as a rasterx.Filler,
// a rasterx.Dasher or a rasterx.Path.
// Coordinates are converted to fixed.Point26_6.
// An error wrapping ErrArcUnsupported is returned if `p` contains
// an arc; the commands before it have then already been added.
func AddTo(p svgpath.Path, q rasterx.Adder) error {
	return replay(p, adder{q})
}

// builder accumulates into a path.Data
type builder struct{ data *path.Data }

func toVec(p svgpath.Point) vec.Vec2 { return vec.Vec2{X: p.X, Y: p.Y} }

func (b builder) start(p svgpath.Point)   { b.data.MoveTo(toVec(p)) }
func (b builder) line(p svgpath.Point)    { b.data.LineTo(toVec(p)) }
func (b builder) quad(c, p svgpath.Point) { b.data.QuadTo(toVec(c), toVec(p)) }
func (b builder) cube(c1, c2, p svgpath.Point) {
	b.data.CubeTo(toVec(c1), toVec(c2), toVec(p))
}
func (b builder) stop(closeLoop bool) {
	if closeLoop {
		b.data.Close()
	}
}

// ToData converts `p` to the path representation of seehuhn.de/go/geom.
// Arcs are not supported.
func ToData(p svgpath.Path) (*path.Data, error) {
	data := &path.Data{}
	if err := replay(p, builder{data}); err != nil {
		return nil, err
	}
	return data, nil
}
