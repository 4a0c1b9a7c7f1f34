package svgpath

// This file defines the path commands, one type per
// SVG command letter and coordinate mode.

// Point is a position in the user space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Command groups the different SVG path commands.
// Upper case commands carry absolute coordinates,
// lower case ones carry deltas to the current point.
type Command interface {
	// Code returns the command letter, such as 'M' or 'q'.
	Code() byte
	// Args returns the arguments in the order of the path grammar.
	Args() []float64
}

type (
	MoveTo    struct{ X, Y float64 }
	MoveToRel struct{ DX, DY float64 }

	LineTo    struct{ X, Y float64 }
	LineToRel struct{ DX, DY float64 }

	HLineTo    struct{ X float64 }
	HLineToRel struct{ DX float64 }

	VLineTo    struct{ Y float64 }
	VLineToRel struct{ DY float64 }

	Close    struct{}
	CloseRel struct{}

	CubicTo    struct{ X1, Y1, X2, Y2, X, Y float64 }
	CubicToRel struct{ DX1, DY1, DX2, DY2, DX, DY float64 }

	SmoothCubicTo    struct{ X2, Y2, X, Y float64 }
	SmoothCubicToRel struct{ DX2, DY2, DX, DY float64 }

	QuadTo    struct{ X1, Y1, X, Y float64 }
	QuadToRel struct{ DX1, DY1, DX, DY float64 }

	SmoothQuadTo    struct{ X, Y float64 }
	SmoothQuadToRel struct{ DX, DY float64 }

	// ArcTo is an elliptical arc. LargeArc and Sweep are flags,
	// stored as parsed (0 or 1 in valid input).
	ArcTo struct {
		RX, RY, XAxisRotation float64
		LargeArc, Sweep       float64
		X, Y                  float64
	}
	ArcToRel struct {
		RX, RY, XAxisRotation float64
		LargeArc, Sweep       float64
		DX, DY                float64
	}
)

func (MoveTo) Code() byte           { return 'M' }
func (MoveToRel) Code() byte        { return 'm' }
func (LineTo) Code() byte           { return 'L' }
func (LineToRel) Code() byte        { return 'l' }
func (HLineTo) Code() byte          { return 'H' }
func (HLineToRel) Code() byte       { return 'h' }
func (VLineTo) Code() byte          { return 'V' }
func (VLineToRel) Code() byte       { return 'v' }
func (Close) Code() byte            { return 'Z' }
func (CloseRel) Code() byte         { return 'z' }
func (CubicTo) Code() byte          { return 'C' }
func (CubicToRel) Code() byte       { return 'c' }
func (SmoothCubicTo) Code() byte    { return 'S' }
func (SmoothCubicToRel) Code() byte { return 's' }
func (QuadTo) Code() byte           { return 'Q' }
func (QuadToRel) Code() byte        { return 'q' }
func (SmoothQuadTo) Code() byte     { return 'T' }
func (SmoothQuadToRel) Code() byte  { return 't' }
func (ArcTo) Code() byte            { return 'A' }
func (ArcToRel) Code() byte         { return 'a' }

func (c MoveTo) Args() []float64     { return []float64{c.X, c.Y} }
func (c MoveToRel) Args() []float64  { return []float64{c.DX, c.DY} }
func (c LineTo) Args() []float64     { return []float64{c.X, c.Y} }
func (c LineToRel) Args() []float64  { return []float64{c.DX, c.DY} }
func (c HLineTo) Args() []float64    { return []float64{c.X} }
func (c HLineToRel) Args() []float64 { return []float64{c.DX} }
func (c VLineTo) Args() []float64    { return []float64{c.Y} }
func (c VLineToRel) Args() []float64 { return []float64{c.DY} }
func (Close) Args() []float64        { return nil }
func (CloseRel) Args() []float64     { return nil }
func (c CubicTo) Args() []float64 {
	return []float64{c.X1, c.Y1, c.X2, c.Y2, c.X, c.Y}
}
func (c CubicToRel) Args() []float64 {
	return []float64{c.DX1, c.DY1, c.DX2, c.DY2, c.DX, c.DY}
}
func (c SmoothCubicTo) Args() []float64    { return []float64{c.X2, c.Y2, c.X, c.Y} }
func (c SmoothCubicToRel) Args() []float64 { return []float64{c.DX2, c.DY2, c.DX, c.DY} }
func (c QuadTo) Args() []float64           { return []float64{c.X1, c.Y1, c.X, c.Y} }
func (c QuadToRel) Args() []float64        { return []float64{c.DX1, c.DY1, c.DX, c.DY} }
func (c SmoothQuadTo) Args() []float64     { return []float64{c.X, c.Y} }
func (c SmoothQuadToRel) Args() []float64  { return []float64{c.DX, c.DY} }
func (c ArcTo) Args() []float64 {
	return []float64{c.RX, c.RY, c.XAxisRotation, c.LargeArc, c.Sweep, c.X, c.Y}
}
func (c ArcToRel) Args() []float64 {
	return []float64{c.RX, c.RY, c.XAxisRotation, c.LargeArc, c.Sweep, c.DX, c.DY}
}

// commandEntry describes how to build one command from
// its group of arguments.
type commandEntry struct {
	arity int
	build func(a []float64) Command
}

// commands is the single source of truth for command
// letters and their argument count.
var commands = map[byte]commandEntry{
	'M': {2, func(a []float64) Command { return MoveTo{a[0], a[1]} }},
	'm': {2, func(a []float64) Command { return MoveToRel{a[0], a[1]} }},
	'L': {2, func(a []float64) Command { return LineTo{a[0], a[1]} }},
	'l': {2, func(a []float64) Command { return LineToRel{a[0], a[1]} }},
	'H': {1, func(a []float64) Command { return HLineTo{a[0]} }},
	'h': {1, func(a []float64) Command { return HLineToRel{a[0]} }},
	'V': {1, func(a []float64) Command { return VLineTo{a[0]} }},
	'v': {1, func(a []float64) Command { return VLineToRel{a[0]} }},
	'Z': {0, func([]float64) Command { return Close{} }},
	'z': {0, func([]float64) Command { return CloseRel{} }},
	'C': {6, func(a []float64) Command { return CubicTo{a[0], a[1], a[2], a[3], a[4], a[5]} }},
	'c': {6, func(a []float64) Command { return CubicToRel{a[0], a[1], a[2], a[3], a[4], a[5]} }},
	'S': {4, func(a []float64) Command { return SmoothCubicTo{a[0], a[1], a[2], a[3]} }},
	's': {4, func(a []float64) Command { return SmoothCubicToRel{a[0], a[1], a[2], a[3]} }},
	'Q': {4, func(a []float64) Command { return QuadTo{a[0], a[1], a[2], a[3]} }},
	'q': {4, func(a []float64) Command { return QuadToRel{a[0], a[1], a[2], a[3]} }},
	'T': {2, func(a []float64) Command { return SmoothQuadTo{a[0], a[1]} }},
	't': {2, func(a []float64) Command { return SmoothQuadToRel{a[0], a[1]} }},
	'A': {7, func(a []float64) Command { return ArcTo{a[0], a[1], a[2], a[3], a[4], a[5], a[6]} }},
	'a': {7, func(a []float64) Command { return ArcToRel{a[0], a[1], a[2], a[3], a[4], a[5], a[6]} }},
}

// Arity returns the number of arguments expected by the command
// letter `code`, and false if `code` is not a path command.
func Arity(code byte) (int, bool) {
	entry, ok := commands[code]
	return entry.arity, ok
}

// NewCommand builds the command `code` from exactly
// Arity(code) arguments.
func NewCommand(code byte, args ...float64) (Command, bool) {
	entry, ok := commands[code]
	if !ok || len(args) != entry.arity {
		return nil, false
	}
	return entry.build(args), true
}

// IsMoveTo returns true for the M and m commands.
func IsMoveTo(c Command) bool {
	switch c.(type) {
	case MoveTo, MoveToRel:
		return true
	}
	return false
}

// IsLine returns true for the straight line commands (L, H, V and their
// relative forms).
func IsLine(c Command) bool {
	switch c.(type) {
	case LineTo, LineToRel, HLineTo, HLineToRel, VLineTo, VLineToRel:
		return true
	}
	return false
}
