package svgpath

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanArguments(t *testing.T) {
	for _, tt := range []struct {
		text  string
		start int
		args  []float64
		next  int
	}{
		{"10 315", 0, []float64{10, 315}, 6},
		{"10,315L", 0, []float64{10, 315}, 6},
		{"10-315", 0, []float64{10, -315}, 6},
		{"-10-315 Z", 0, []float64{-10, -315}, 8},
		{"M 1.5 .5 -.25z", 1, []float64{1.5, 0.5, -0.25}, 13},
		{"\t1\n2\r3", 0, []float64{1, 2, 3}, 6},
		{"Z", 0, nil, 0},
		{"", 0, nil, 0},
	} {
		args, next, err := ScanArguments(tt.text, tt.start)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.args, args, tt.text)
		assert.Equal(t, tt.next, next, tt.text)
	}
}

func TestScanArgumentsErrors(t *testing.T) {
	for _, text := range []string{
		"10--10",
		"10- ",
		"-",
		"-10.5.5",
		"1..",
		".",
	} {
		_, _, err := ScanArguments(text, 0)
		var serr *SyntaxError
		if assert.ErrorAs(t, err, &serr, text) {
			assert.Equal(t, text, serr.Text)
		}
	}
}

func TestParseMove(t *testing.T) {
	for _, tt := range []struct {
		text     string
		expected Path
	}{
		{"M10 315", Path{MoveTo{10, 315}}},
		{"M 10 315", Path{MoveTo{10, 315}}},
		{"M10 315 43 17", Path{MoveTo{10, 315}, MoveTo{43, 17}}},
		{"M 10 315 43 17 9 217", Path{MoveTo{10, 315}, MoveTo{43, 17}, MoveTo{9, 217}}},
		{"M 10 315 M 78 35", Path{MoveTo{10, 315}, MoveTo{78, 35}}},
		{"m1 2", Path{MoveToRel{1, 2}}},
	} {
		p, err := Parse(tt.text)
		require.NoError(t, err)
		if diff := cmp.Diff(tt.expected, p); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestParseNegativeAndDecimal(t *testing.T) {
	for _, tt := range []struct {
		text     string
		expected Path
	}{
		{"M10 -315 Z", Path{MoveTo{10, -315}, Close{}}},
		{"M -10 315 Z", Path{MoveTo{-10, 315}, Close{}}},
		{"M-10 315 Z", Path{MoveTo{-10, 315}, Close{}}},
		{"M 10-315 Z", Path{MoveTo{10, -315}, Close{}}},
		{"M10-315 Z", Path{MoveTo{10, -315}, Close{}}},
		{"M-10-315 Z", Path{MoveTo{-10, -315}, Close{}}},
		{"M -10 -315 Z", Path{MoveTo{-10, -315}, Close{}}},
		{"M10.5 -315 Z", Path{MoveTo{10.5, -315}, Close{}}},
		{"M-10.5 -315 Z", Path{MoveTo{-10.5, -315}, Close{}}},
	} {
		p, err := Parse(tt.text)
		require.NoError(t, err)
		if diff := cmp.Diff(tt.expected, p); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestParseAllCommands(t *testing.T) {
	p, err := Parse("M100,200 C100,100 250,100 250,200 S400,300 400,200 z")
	require.NoError(t, err)
	assert.Equal(t, Path{
		MoveTo{100, 200},
		CubicTo{X1: 100, Y1: 100, X2: 250, Y2: 100, X: 250, Y: 200},
		SmoothCubicTo{X2: 400, Y2: 300, X: 400, Y: 200},
		CloseRel{},
	}, p)

	p, err = Parse("m1 2l3 4h5v6c1 2 3 4 5 6s1 2 3 4q1 2 3 4t1 2a25 26 -30 0 1 50-25H1V2L3 4Q1 2 3 4T5 6A1 2 3 1 0 4 5Z")
	require.NoError(t, err)
	assert.Equal(t, Path{
		MoveToRel{1, 2},
		LineToRel{3, 4},
		HLineToRel{5},
		VLineToRel{6},
		CubicToRel{1, 2, 3, 4, 5, 6},
		SmoothCubicToRel{1, 2, 3, 4},
		QuadToRel{1, 2, 3, 4},
		SmoothQuadToRel{1, 2},
		ArcToRel{RX: 25, RY: 26, XAxisRotation: -30, LargeArc: 0, Sweep: 1, DX: 50, DY: -25},
		HLineTo{1},
		VLineTo{2},
		LineTo{3, 4},
		QuadTo{1, 2, 3, 4},
		SmoothQuadTo{5, 6},
		ArcTo{RX: 1, RY: 2, XAxisRotation: 3, LargeArc: 1, Sweep: 0, X: 4, Y: 5},
		Close{},
	}, p)
}

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		p, err := Parse(text)
		require.NoError(t, err)
		assert.Empty(t, p)
	}
}

func TestParseFragment(t *testing.T) {
	// fragments without a leading move are valid parser output
	p, err := Parse("L1 2 3 4")
	require.NoError(t, err)
	assert.Equal(t, Path{LineTo{1, 2}, LineTo{3, 4}}, p)
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		"M 10 315 12",
		"M10- Z",
		"M10--10 Z",
		"M10-- Z",
		"M-10.5.5 -315 Z",
		"M10 10 Z 5",
		"M10 10 L",
		"M10 10 X 5",
		"10 10",
		"M10 10 A1 2 3 4 5 6",
		"M1 2 +3",
	} {
		_, err := Parse(text)
		assert.Error(t, err, text)
		assert.True(t, errors.Is(err, ErrSyntax), text)
	}
}

func TestSyntaxErrorContext(t *testing.T) {
	_, err := Parse("M10--10 Z")
	require.Error(t, err)
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 4, serr.Pos)
	assert.Equal(t, "Minus symbol in an unexpected place; context (4): M10-[-]10 Z", err.Error())

	_, err = Parse("M0 0 K1 2 3 4 5 6 7 8 9 10 11 12")
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 5, serr.Pos)
	assert.Equal(t, "Unknown command: K; context (5): M0 0 [K]1 2 3 4 5 6 7 8...", err.Error())

	_, err = Parse("M 10 315 12")
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 1, serr.Pos)
	assert.Contains(t, err.Error(), "Wrong parameters count (3), should be 2 per command")
}

func TestSyntaxErrorMultiByte(t *testing.T) {
	_, err := Parse("M10 10 é")
	require.Error(t, err)
	assert.Equal(t, "Unknown command: é; context (7): M10 10 [é]", err.Error())
	assert.True(t, utf8.ValidString(err.Error()))

	// the context after the offending character is cut on runes
	_, err = Parse("M1 1 " + strings.Repeat("é", 20))
	require.Error(t, err)
	assert.Equal(t, "Unknown command: é; context (5): M1 1 [é]"+strings.Repeat("é", 15)+"...", err.Error())
	assert.True(t, utf8.ValidString(err.Error()))
}

func TestParseCommand(t *testing.T) {
	cmds, next, err := ParseCommand("M1 2L3 4 5 6Z", 'L', 5)
	require.NoError(t, err)
	assert.Equal(t, []Command{LineTo{3, 4}, LineTo{5, 6}}, cmds)
	assert.Equal(t, 12, next)

	cmds, next, err = ParseCommand("Z  M", 'Z', 1)
	require.NoError(t, err)
	assert.Equal(t, []Command{Close{}}, cmds)
	assert.Equal(t, 3, next)

	_, _, err = ParseCommand("B1", 'B', 1)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, Path{MoveTo{1, 2}}, MustParse("M1 2"))
	assert.Panics(t, func() { MustParse("M1") })
}

func TestArity(t *testing.T) {
	for code, expected := range map[byte]int{
		'M': 2, 'm': 2, 'L': 2, 'l': 2, 'H': 1, 'h': 1, 'V': 1, 'v': 1, 'Z': 0, 'z': 0,
		'C': 6, 'c': 6, 'S': 4, 's': 4, 'Q': 4, 'q': 4, 'T': 2, 't': 2, 'A': 7, 'a': 7,
	} {
		n, ok := Arity(code)
		assert.True(t, ok)
		assert.Equal(t, expected, n, string(code))

		args := make([]float64, n)
		for i := range args {
			args[i] = float64(i + 1)
		}
		cmd, ok := NewCommand(code, args...)
		require.True(t, ok)
		assert.Equal(t, code, cmd.Code())
		assert.Equal(t, n, len(cmd.Args()))
	}
	_, ok := Arity('x')
	assert.False(t, ok)
	_, ok = NewCommand('M', 1)
	assert.False(t, ok)
}
