package svgpath

import (
	"strconv"
	"strings"
)

// character classes of the numeric arguments

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isSeparator(c byte) bool { return isSpace(c) || c == ',' }

func isMinus(c byte) bool { return c == '-' }

func isDot(c byte) bool { return c == '.' }

// makeNumber converts a complete token. The duplicate
// decimal points accepted by the scanner are rejected here.
func makeNumber(token, text string, pos int) (float64, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, newSyntaxError(text, pos, "Bad number format: %q", token)
	}
	return f, nil
}

// ScanArguments reads the numeric arguments starting at `start`,
// until the first character which is not a digit, a dot, a minus sign,
// a space or a comma. It returns the numbers and the index of this
// character (len(text) if the end is reached).
// A minus sign also separates numbers: "10-5" is read as 10 and -5.
func ScanArguments(text string, start int) ([]float64, int, error) {
	var (
		out   []float64
		token strings.Builder
		i     = start
	)
	flush := func(pos int) error {
		if token.Len() == 0 {
			return nil
		}
		f, err := makeNumber(token.String(), text, pos)
		if err != nil {
			return err
		}
		out = append(out, f)
		token.Reset()
		return nil
	}

	for ; i < len(text); i++ {
		c := text[i]
		switch {
		case isSeparator(c):
			if err := flush(i); err != nil {
				return nil, i, err
			}
		case isDigit(c), isDot(c):
			token.WriteByte(c)
		case isMinus(c):
			if token.String() == "-" {
				return nil, i, newSyntaxError(text, i, "Minus symbol in an unexpected place")
			}
			if err := flush(i); err != nil {
				return nil, i, err
			}
			token.WriteByte(c)
		default:
			if err := flush(i); err != nil {
				return nil, i, err
			}
			return out, i, nil
		}
	}
	if err := flush(i); err != nil {
		return nil, i, err
	}
	return out, i, nil
}
