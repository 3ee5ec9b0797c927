package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Skew returns the skew-symmetric matrix [w] of a vector, such that [w]x == w × x for any x.
//
//	[  0  -wz   wy ]
//	[  wz   0  -wx ]
//	[ -wy  wx    0 ]
func Skew(w r3.Vector) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -w.Z, w.Y},
		mgl64.Vec3{w.Z, 0, -w.X},
		mgl64.Vec3{-w.Y, w.X, 0},
	)
}

// Unskew recovers the vector from a skew-symmetric matrix. Only the lower triangle is read.
func Unskew(m mgl64.Mat3) r3.Vector {
	return r3.Vector{X: m.At(2, 1), Y: m.At(0, 2), Z: m.At(1, 0)}
}
