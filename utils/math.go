// Package utils contains small numeric helpers shared by the kinematics packages.
package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// IsFinite returns false for NaN and +/-Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AllFinite reports whether every value in the slice is finite, along with the index of the first
// offending value, or -1.
func AllFinite(values []float64) (bool, int) {
	for i, v := range values {
		if !IsFinite(v) {
			return false, i
		}
	}
	return true, -1
}
