package svground

import (
	"math"
	"testing"

	"github.com/benoitkugler/svgcorner/svgpath"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(svgpath.Point{X: 0, Y: 0}, svgpath.Point{X: 3, Y: 4}))
	assert.Equal(t, 5.0, Distance(svgpath.Point{X: -3, Y: -4}, svgpath.Point{X: 0, Y: 0}))
	assert.Equal(t, 0.0, Distance(svgpath.Point{X: 1, Y: 1}, svgpath.Point{X: 1, Y: 1}))

	// no underflow for tiny but distinct points
	assert.InEpsilon(t, 5e-200, Distance(svgpath.Point{}, svgpath.Point{X: 3e-200, Y: 4e-200}), 1e-12)
	assert.InEpsilon(t, 5e200, Distance(svgpath.Point{}, svgpath.Point{X: 3e200, Y: 4e200}), 1e-12)
}

func TestLawOfCosines(t *testing.T) {
	assert.InDelta(t, math.Pi/2, LawOfCosines(3, 4, 5), 1e-12)
	assert.InDelta(t, math.Pi/3, LawOfCosines(1, 1, 1), 1e-12)
	assert.InDelta(t, math.Pi, LawOfCosines(10, 10, 20), 1e-12)

	// overshoot from rounding errors is clamped instead of giving NaN
	assert.Equal(t, math.Pi, LawOfCosines(1, 1, 2.0000001))
	assert.Equal(t, 0.0, LawOfCosines(1, 2, 0.9999999))

	// the angle does not depend on the scale
	assert.InDelta(t, math.Pi/2, LawOfCosines(3e-200, 4e-200, 5e-200), 1e-12)
	assert.InDelta(t, math.Pi/2, LawOfCosines(3e200, 4e200, 5e200), 1e-12)
}

func TestScaleVector(t *testing.T) {
	anchor, point := svgpath.Point{X: 0, Y: 0}, svgpath.Point{X: 10, Y: 0}
	tolEqualPoint(t, svgpath.Point{X: 7, Y: 0}, ScaleVector(anchor, point, 0.7))
	assert.Equal(t, point, ScaleVector(anchor, point, 1))
	assert.Equal(t, anchor, ScaleVector(anchor, point, 0))
	tolEqualPoint(t, svgpath.Point{X: 20, Y: 0}, ScaleVector(anchor, point, 2))

	anchor, point = svgpath.Point{X: 100, Y: 100}, svgpath.Point{X: 100, Y: 0}
	tolEqualPoint(t, svgpath.Point{X: 100, Y: 30}, ScaleVector(anchor, point, 0.7))
}
