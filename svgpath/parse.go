package svgpath

import "unicode/utf8"

// ParseCommand reads the arguments of the command `code`, starting at
// `start` (just after the command letter), and returns one command
// per group of arguments: "L1 2 3 4" gives two LineTo.
// The returned index is the position of the next command letter.
func ParseCommand(text string, code byte, start int) ([]Command, int, error) {
	entry, ok := commands[code]
	if !ok {
		r := rune(code)
		if 0 < start && start <= len(text) {
			r, _ = utf8.DecodeRuneInString(text[start-1:])
		}
		return nil, start, newSyntaxError(text, start-1, "Unknown command: %c", r)
	}

	args, next, err := ScanArguments(text, start)
	if err != nil {
		return nil, next, err
	}

	if entry.arity == 0 && len(args) != 0 ||
		entry.arity > 0 && (len(args) == 0 || len(args)%entry.arity != 0) {
		return nil, next, newSyntaxError(text, start,
			"Wrong parameters count (%d), should be %d per command", len(args), entry.arity)
	}

	if entry.arity == 0 {
		return []Command{entry.build(nil)}, next, nil
	}
	out := make([]Command, 0, len(args)/entry.arity)
	for i := 0; i < len(args); i += entry.arity {
		out = append(out, entry.build(args[i:i+entry.arity]))
	}
	return out, next, nil
}

// Parse parses the path data `text`, as found in the `d` attribute
// of a <path> element. An empty string gives an empty path.
// Parse does not check that the path starts with a move command.
func Parse(text string) (Path, error) {
	var out Path
	i := 0
	for {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			return out, nil
		}
		cmds, next, err := ParseCommand(text, text[i], i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, cmds...)
		i = next
	}
}

// MustParse is like Parse, but panics on invalid input.
func MustParse(text string) Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}
