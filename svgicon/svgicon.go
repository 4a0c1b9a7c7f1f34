// Provides parsing of the geometry of SVG images.
// The shapes of an SVG file are collected as path data,
// which can then be rounded, serialized or drawn.
// See for example svgcorner/svground or svgcorner/svgdraw .
package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgcorner/svground"
	"github.com/benoitkugler/svgcorner/svgpath"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips un-handled SVG elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode outputs a warning when an un-handled SVG element is found
	WarnErrorMode
	// StrictErrorMode causes an error when an un-handled SVG element is found
	StrictErrorMode
)

// Bounds defines a bounding box, such as a viewport
type Bounds struct{ X, Y, W, H float64 }

// Shape is a drawing element, converted to its path data.
type Shape struct {
	ID   string // may be empty
	Tag  string // the element name, such as "rect" or "path"
	Path svgpath.Path
}

// Icon holds data from parsed SVGs.
type Icon struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	Shapes       []Shape

	Width, Height string // top level width and height attributes
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to process many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*Icon, error) {
	icon := &Icon{}
	cursor := &iconCursor{icon: icon, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err = cursor.readStartElement(se); err != nil {
				return icon, err
			}
		case xml.EndElement:
			cursor.readEndElement(se)
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the Icon from the named file
// This only supports a sub-set of SVG, but
// is enough to process many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIcon(iconFile string, errMode ErrorMode) (*Icon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}

// RoundCorners returns a new icon, where the corners of every
// shape have been rounded according to `opts`.
// The receiver is not modified.
func (icon *Icon) RoundCorners(opts svground.Options) (*Icon, error) {
	out := *icon
	out.Titles = append([]string(nil), icon.Titles...)
	out.Descriptions = append([]string(nil), icon.Descriptions...)
	out.Shapes = make([]Shape, len(icon.Shapes))
	for i, shape := range icon.Shapes {
		rounded, err := opts.Round(shape.Path)
		if err != nil {
			return nil, fmt.Errorf("shape %d (<%s> %q): %w", i, shape.Tag, shape.ID, err)
		}
		shape.Path = rounded
		out.Shapes[i] = shape
	}
	return &out, nil
}
