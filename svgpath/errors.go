package svgpath

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// contextLength is the number of characters shown
// after the offending one in syntax errors.
const contextLength = 15

var (
	// ErrSyntax is matched by every *SyntaxError.
	ErrSyntax = errors.New("invalid path data")

	// ErrNoMoveTo is returned when a path does not start
	// with a M or m command.
	ErrNoMoveTo = errors.New(`path must start with an "M" or "m" command`)
)

// SyntaxError reports malformed path data.
type SyntaxError struct {
	Msg  string
	Text string // the whole path data
	Pos  int    // byte offset of the offending character
}

func newSyntaxError(text string, pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Text: text, Pos: pos}
}

// Error shows the offending character between brackets, for instance
// `Minus symbol in an unexpected place; context (3): M10[-]-10 Z`.
func (e *SyntaxError) Error() string {
	pos := e.Pos
	if pos > len(e.Text) {
		pos = len(e.Text)
	}
	before, char, after := e.Text[:pos], "", ""
	if pos < len(e.Text) {
		_, size := utf8.DecodeRuneInString(e.Text[pos:])
		char = e.Text[pos : pos+size]
		after = e.Text[pos+size:]
		n := 0
		for i := range after {
			if n == contextLength {
				after = after[:i] + "..."
				break
			}
			n++
		}
	}
	return fmt.Sprintf("%s; context (%d): %s[%s]%s", e.Msg, e.Pos, before, char, after)
}

// Is makes errors.Is(err, ErrSyntax) true.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }
