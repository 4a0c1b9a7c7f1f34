// Implements an abstract representation of
// svg path data, which can be parsed from and serialized
// to the `d` attribute syntax.
package svgpath

import (
	"fmt"
	"strconv"
	"strings"
)

// Path describes a sequence of SVG path commands, in draw order.
type Path []Command

// SplitSubpaths cuts `p` before each move command.
// An error wrapping ErrNoMoveTo is returned if `p` is not empty
// and does not start with a move command.
func SplitSubpaths(p Path) ([]Path, error) {
	if len(p) == 0 {
		return nil, nil
	}
	if !IsMoveTo(p[0]) {
		return nil, fmt.Errorf("%w, not %q", ErrNoMoveTo, p[0].Code())
	}

	var (
		out     []Path
		subpath Path
	)
	for _, c := range p {
		if IsMoveTo(c) && len(subpath) > 0 {
			out = append(out, subpath)
			subpath = nil
		}
		subpath = append(subpath, c)
	}
	return append(out, subpath), nil
}

// Subpaths is a shortcut for SplitSubpaths(p).
func (p Path) Subpaths() ([]Path, error) { return SplitSubpaths(p) }

// Copy returns a new slice with the same commands.
func (p Path) Copy() Path {
	if p == nil {
		return nil
	}
	return append(Path{}, p...)
}

// Absolute returns an equivalent path using only absolute commands.
func (p Path) Absolute() Path {
	out := make(Path, len(p))
	var pen Pen
	for i, c := range p {
		out[i] = pen.Absolute(c)
		pen = pen.Advance(c)
	}
	return out
}

// Relative returns an equivalent path using only relative commands.
// The first move command is relative to the origin.
func (p Path) Relative() Path {
	out := make(Path, len(p))
	var pen Pen
	for i, c := range p {
		out[i] = pen.Relative(c)
		pen = pen.Advance(c)
	}
	return out
}

// Serialize returns the path data of `p`, with the shortest exact
// representation of each number.
func Serialize(p Path) string { return p.Format(-1) }

// String returns the path data, see Serialize.
func (p Path) String() string { return p.Format(-1) }

// Format returns the path data of `p`, with numbers rounded
// to `prec` decimals (-1 for the shortest exact representation).
// Consecutive commands with the same letter share it: "M10 315 78 35Z".
// Spaces are omitted before negative numbers.
func (p Path) Format(prec int) string {
	var b strings.Builder
	var last byte
	for _, c := range p {
		code := c.Code()
		args := c.Args()
		// a close command has no argument to repeat
		writeLetter := code != last || len(args) == 0
		if writeLetter {
			b.WriteByte(code)
		}
		for i, arg := range args {
			s := formatNumber(arg, prec)
			if (i > 0 || !writeLetter) && s[0] != '-' {
				b.WriteByte(' ')
			}
			b.WriteString(s)
		}
		last = code
	}
	return b.String()
}

func formatNumber(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if prec > 0 && strings.IndexByte(s, '.') != -1 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
