package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/benoitkugler/svgcorner/svground"
	"github.com/benoitkugler/svgcorner/svgpath"
	"github.com/tdewolff/parse/v2/strconv"
)

var errParamMismatch = errors.New("param mismatch")

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon                    *Icon
	errorMode               ErrorMode
	inTitleText, inDescText bool

	// filled by the element functions, and
	// flushed into a Shape by readStartElement
	path svgpath.Path

	// > 0 inside an element whose content is not rendered,
	// counting the open elements
	skipDepth int
}

// templates hold content which is only drawn when referenced,
// or used for clipping and masking.
var templates = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"symbol":   true,
	"mask":     true,
	"pattern":  true,
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"desc":     descF,
	"title":    titleF,
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	if c.skipDepth > 0 || templates[se.Name.Local] {
		c.skipDepth++
		return nil
	}
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		errStr := "Cannot process svg element " + se.Name.Local
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("<%s>: %w", se.Name.Local, err)
	}

	if len(c.path) > 0 {
		// the cursor parsed a path from the xml element
		shape := Shape{Tag: se.Name.Local, Path: c.path}
		for _, attr := range se.Attr {
			if attr.Name.Local == "id" {
				shape.ID = attr.Value
			}
		}
		c.icon.Shapes = append(c.icon.Shapes, shape)
		c.path = nil
	}
	return nil
}

func (c *iconCursor) readEndElement(se xml.EndElement) {
	if c.skipDepth > 0 {
		c.skipDepth--
		return
	}
	switch se.Name.Local {
	case "title":
		c.inTitleText = false
	case "desc":
		c.inDescText = false
	}
}

func isCommaWhitespace(b byte) bool {
	return b == ' ' || b == ',' || b == '\n' || b == '\r' || b == '\t'
}

// parsePoints reads a list of numbers separated by
// commas or white spaces.
func parsePoints(s string) ([]float64, error) {
	b := []byte(s)
	var out []float64
	for {
		for len(b) > 0 && isCommaWhitespace(b[0]) {
			b = b[1:]
		}
		if len(b) == 0 {
			return out, nil
		}
		f, n := strconv.ParseFloat(b)
		if n == 0 {
			return nil, fmt.Errorf("invalid number list %q", s)
		}
		out = append(out, f)
		b = b[n:]
	}
}

// parseLength reads a number, with an optional "px" unit.
func parseLength(s string) (float64, error) {
	b := []byte(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	f, n := strconv.ParseFloat(b)
	if n == 0 || n != len(b) {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return f, nil
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			var points []float64
			points, err = parsePoints(attr.Value)
			if err == nil && len(points) != 4 {
				return errParamMismatch
			}
			if err == nil {
				c.icon.ViewBox = Bounds{X: points[0], Y: points[1], W: points[2], H: points[3]}
			}
		case "width": // relative units such as "100%" are kept as string only
			c.icon.Width = attr.Value
			if f, errL := parseLength(attr.Value); errL == nil {
				width = f
			}
		case "height":
			c.icon.Height = attr.Value
			if f, errL := parseLength(attr.Value); errL == nil {
				height = f
			}
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // only the children of g are drawn

// readLengths parses the attributes named in `dst`, leaving
// the others untouched.
func readLengths(attrs []xml.Attr, dst map[string]*float64) error {
	for _, attr := range attrs {
		ptr, ok := dst[attr.Name.Local]
		if !ok {
			continue
		}
		f, err := parseLength(attr.Value)
		if err != nil {
			return err
		}
		*ptr = f
	}
	return nil
}

func rectF(c *iconCursor, attrs []xml.Attr) error {
	x, y, w, h, rx, ry := 0., 0., 0., 0., -1., -1.
	err := readLengths(attrs, map[string]*float64{
		"x": &x, "y": &y, "width": &w, "height": &h, "rx": &rx, "ry": &ry,
	})
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 { // not drawn, but not an error
		return nil
	}
	// a missing radius defaults to the other one
	if rx < 0 {
		rx = ry
	} else if ry < 0 {
		ry = rx
	}
	radius := math.Min(math.Min(rx, ry), math.Min(w/2, h/2))
	if radius <= 0 {
		c.path = svgpath.Path{
			svgpath.MoveTo{X: x, Y: y},
			svgpath.HLineTo{X: x + w},
			svgpath.VLineTo{Y: y + h},
			svgpath.HLineTo{X: x},
			svgpath.Close{},
		}
		return nil
	}
	// start in the middle of the top side so that the
	// four corners are between two lines
	outline := svgpath.Path{
		svgpath.MoveTo{X: x + w/2, Y: y},
		svgpath.HLineTo{X: x + w},
		svgpath.VLineTo{Y: y + h},
		svgpath.HLineTo{X: x},
		svgpath.VLineTo{Y: y},
		svgpath.HLineTo{X: x + w/2},
		svgpath.Close{},
	}
	c.path, err = svground.RoundCorners(outline, radius)
	return err
}

// circleF writes the ellipse as two half arcs.
func circleF(c *iconCursor, attrs []xml.Attr) error {
	var cx, cy, r, rx, ry float64
	err := readLengths(attrs, map[string]*float64{
		"cx": &cx, "cy": &cy, "r": &r, "rx": &rx, "ry": &ry,
	})
	if err != nil {
		return err
	}
	if r != 0 {
		rx, ry = r, r
	}
	if rx <= 0 || ry <= 0 { // not drawn, but not an error
		return nil
	}
	c.path = svgpath.Path{
		svgpath.MoveTo{X: cx + rx, Y: cy},
		svgpath.ArcTo{RX: rx, RY: ry, Sweep: 1, X: cx - rx, Y: cy},
		svgpath.ArcTo{RX: rx, RY: ry, Sweep: 1, X: cx + rx, Y: cy},
		svgpath.Close{},
	}
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	err := readLengths(attrs, map[string]*float64{
		"x1": &x1, "y1": &y1, "x2": &x2, "y2": &y2,
	})
	if err != nil {
		return err
	}
	c.path = svgpath.Path{svgpath.MoveTo{X: x1, Y: y1}, svgpath.LineTo{X: x2, Y: y2}}
	return nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	var points []float64
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		var err error
		points, err = parsePoints(attr.Value)
		if err != nil {
			return err
		}
		if len(points)%2 != 0 {
			return errors.New("polygon has odd number of points")
		}
	}
	if len(points) < 4 { // a single point is not drawn
		return nil
	}
	c.path = svgpath.Path{svgpath.MoveTo{X: points[0], Y: points[1]}}
	for i := 2; i < len(points); i += 2 {
		c.path = append(c.path, svgpath.LineTo{X: points[i], Y: points[i+1]})
	}
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	err := polylineF(c, attrs)
	if len(c.path) > 0 {
		c.path = append(c.path, svgpath.Close{})
	}
	return err
}

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		p, err := svgpath.Parse(attr.Value)
		if err != nil {
			return err
		}
		c.path = p
	}
	return nil
}

func descF(c *iconCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}
