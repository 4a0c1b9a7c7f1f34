package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func walk(p Path) Pen {
	var pen Pen
	for _, c := range p {
		pen = pen.Advance(c)
	}
	return pen
}

func TestPenAdvance(t *testing.T) {
	for _, tt := range []struct {
		pathData string
		current  Point
		start    Point
	}{
		{"", Point{0, 0}, Point{0, 0}},
		{"m5 5", Point{5, 5}, Point{5, 5}},
		{"M10 10l5 0", Point{15, 10}, Point{10, 10}},
		{"M10 10H0V-3", Point{0, -3}, Point{10, 10}},
		{"M10 10h-10v-3", Point{0, 7}, Point{10, 10}},
		{"M10 10L20 20z", Point{10, 10}, Point{10, 10}},
		// a relative move starts from the end of the previous subpath
		{"M10 10L20 20m1 1", Point{21, 21}, Point{21, 21}},
		// or from its start, if it is closed
		{"M10 10L20 20zm1 1", Point{11, 11}, Point{11, 11}},
		{"M0 0c1 1 2 2 3 3s1 1 2 2", Point{5, 5}, Point{0, 0}},
		{"M0 0a5 5 0 0 1 10 0", Point{10, 0}, Point{0, 0}},
	} {
		pen := walk(MustParse(tt.pathData))
		assert.Equal(t, tt.current, pen.Current, tt.pathData)
		assert.Equal(t, tt.start, pen.Start, tt.pathData)
	}
}

func TestPenIsValue(t *testing.T) {
	var pen Pen
	next := pen.Advance(MoveTo{3, 4})
	assert.Equal(t, Point{}, pen.Current)
	assert.Equal(t, Point{3, 4}, next.Current)
	assert.Equal(t, Point{4, 4}, next.Endpoint(HLineToRel{1}))
	assert.Equal(t, Point{3, 4}, next.Current)
}

func TestPenSmoothControls(t *testing.T) {
	pen := walk(MustParse("M0 0C0 10 10 10 10 0"))
	assert.Equal(t, Point{10, -10}, pen.SmoothCubicControl())
	assert.Equal(t, Point{10, 0}, pen.SmoothQuadControl())

	pen = walk(MustParse("M0 0S5 5 10 0"))
	assert.Equal(t, Point{15, -5}, pen.SmoothCubicControl())

	pen = walk(MustParse("M0 0Q5 5 10 0"))
	assert.Equal(t, Point{15, -5}, pen.SmoothQuadControl())
	assert.Equal(t, Point{10, 0}, pen.SmoothCubicControl())

	// T reflects the reflected control point
	pen = walk(MustParse("M0 0Q5 5 10 0T20 0"))
	assert.Equal(t, Point{25, 5}, pen.SmoothQuadControl())

	// any other command resets the reflection
	pen = walk(MustParse("M0 0Q5 5 10 0L20 0"))
	assert.Equal(t, Point{20, 0}, pen.SmoothQuadControl())
}
