package svgpath

// Pen tracks the current point while walking a path.
// It is a value type: Advance returns the updated pen and
// never modifies the receiver, so that a walk is a simple fold:
//
//	var pen Pen
//	for _, cmd := range path {
//		pen = pen.Advance(cmd)
//	}
//
// The zero value starts at the origin.
type Pen struct {
	Current Point // end point of the last command
	Start   Point // start of the current subpath, where Z goes back to

	// control point of the last C/S (resp. Q/T) command,
	// used to resolve S (resp. T)
	cubicCtrl, quadCtrl Point
	lastCubic, lastQuad bool
}

// SmoothCubicControl returns the first control point of
// a S command drawn from the current point: the reflection of the
// second control point of the previous C or S command, or the current
// point if the previous command is not a cubic curve.
func (pn Pen) SmoothCubicControl() Point {
	if !pn.lastCubic {
		return pn.Current
	}
	return pn.Current.Add(pn.Current.Sub(pn.cubicCtrl))
}

// SmoothQuadControl is the equivalent of SmoothCubicControl for
// the T command.
func (pn Pen) SmoothQuadControl() Point {
	if !pn.lastQuad {
		return pn.Current
	}
	return pn.Current.Add(pn.Current.Sub(pn.quadCtrl))
}

// Absolute returns the absolute form of `c`, when drawn from the pen
// position. Absolute commands are returned unchanged.
func (pn Pen) Absolute(c Command) Command {
	cur := pn.Current
	switch c := c.(type) {
	case MoveToRel:
		return MoveTo{cur.X + c.DX, cur.Y + c.DY}
	case LineToRel:
		return LineTo{cur.X + c.DX, cur.Y + c.DY}
	case HLineToRel:
		return HLineTo{cur.X + c.DX}
	case VLineToRel:
		return VLineTo{cur.Y + c.DY}
	case CloseRel:
		return Close{}
	case CubicToRel:
		return CubicTo{cur.X + c.DX1, cur.Y + c.DY1, cur.X + c.DX2, cur.Y + c.DY2, cur.X + c.DX, cur.Y + c.DY}
	case SmoothCubicToRel:
		return SmoothCubicTo{cur.X + c.DX2, cur.Y + c.DY2, cur.X + c.DX, cur.Y + c.DY}
	case QuadToRel:
		return QuadTo{cur.X + c.DX1, cur.Y + c.DY1, cur.X + c.DX, cur.Y + c.DY}
	case SmoothQuadToRel:
		return SmoothQuadTo{cur.X + c.DX, cur.Y + c.DY}
	case ArcToRel:
		return ArcTo{c.RX, c.RY, c.XAxisRotation, c.LargeArc, c.Sweep, cur.X + c.DX, cur.Y + c.DY}
	}
	return c
}

// Relative returns the relative form of `c`, when drawn from the pen
// position. Relative commands are returned unchanged.
func (pn Pen) Relative(c Command) Command {
	cur := pn.Current
	switch c := c.(type) {
	case MoveTo:
		return MoveToRel{c.X - cur.X, c.Y - cur.Y}
	case LineTo:
		return LineToRel{c.X - cur.X, c.Y - cur.Y}
	case HLineTo:
		return HLineToRel{c.X - cur.X}
	case VLineTo:
		return VLineToRel{c.Y - cur.Y}
	case Close:
		return CloseRel{}
	case CubicTo:
		return CubicToRel{c.X1 - cur.X, c.Y1 - cur.Y, c.X2 - cur.X, c.Y2 - cur.Y, c.X - cur.X, c.Y - cur.Y}
	case SmoothCubicTo:
		return SmoothCubicToRel{c.X2 - cur.X, c.Y2 - cur.Y, c.X - cur.X, c.Y - cur.Y}
	case QuadTo:
		return QuadToRel{c.X1 - cur.X, c.Y1 - cur.Y, c.X - cur.X, c.Y - cur.Y}
	case SmoothQuadTo:
		return SmoothQuadToRel{c.X - cur.X, c.Y - cur.Y}
	case ArcTo:
		return ArcToRel{c.RX, c.RY, c.XAxisRotation, c.LargeArc, c.Sweep, c.X - cur.X, c.Y - cur.Y}
	}
	return c
}

// Endpoint returns the point reached after drawing `c`.
func (pn Pen) Endpoint(c Command) Point {
	return pn.Advance(c).Current
}

// Advance returns the pen state after drawing `c`.
func (pn Pen) Advance(c Command) Pen {
	next := pn
	next.lastCubic, next.lastQuad = false, false
	switch c := pn.Absolute(c).(type) {
	case MoveTo:
		next.Current = Point{c.X, c.Y}
		next.Start = next.Current
	case LineTo:
		next.Current = Point{c.X, c.Y}
	case HLineTo:
		next.Current.X = c.X
	case VLineTo:
		next.Current.Y = c.Y
	case Close:
		next.Current = pn.Start
	case CubicTo:
		next.Current = Point{c.X, c.Y}
		next.cubicCtrl, next.lastCubic = Point{c.X2, c.Y2}, true
	case SmoothCubicTo:
		next.Current = Point{c.X, c.Y}
		next.cubicCtrl, next.lastCubic = Point{c.X2, c.Y2}, true
	case QuadTo:
		next.Current = Point{c.X, c.Y}
		next.quadCtrl, next.lastQuad = Point{c.X1, c.Y1}, true
	case SmoothQuadTo:
		next.Current = Point{c.X, c.Y}
		next.quadCtrl, next.lastQuad = pn.SmoothQuadControl(), true
	case ArcTo:
		next.Current = Point{c.X, c.Y}
	}
	return next
}
