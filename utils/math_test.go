package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90.)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5)
}

func TestFinite(t *testing.T) {
	test.That(t, IsFinite(0), test.ShouldBeTrue)
	test.That(t, IsFinite(math.NaN()), test.ShouldBeFalse)
	test.That(t, IsFinite(math.Inf(-1)), test.ShouldBeFalse)

	ok, idx := AllFinite([]float64{1, 2, 3})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, idx, test.ShouldEqual, -1)

	ok, idx = AllFinite([]float64{1, math.Inf(1), math.NaN()})
	test.That(t, ok, test.ShouldBeFalse)
	test.That(t, idx, test.ShouldEqual, 1)
}
