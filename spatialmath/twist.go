package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Twist is a 6 component spatial velocity ordered (angular, linear). When used as a screw axis it is
// normalized so that either the angular part has unit length (revolute joint) or the angular part is zero and the
// linear part has unit length (prismatic joint).
type Twist struct {
	Angular r3.Vector `json:"angular"`
	Linear  r3.Vector `json:"linear"`
}

// NewTwist returns a twist from its six components, angular part first.
func NewTwist(wx, wy, wz, vx, vy, vz float64) Twist {
	return Twist{
		Angular: r3.Vector{X: wx, Y: wy, Z: wz},
		Linear:  r3.Vector{X: vx, Y: vy, Z: vz},
	}
}

// NewTwistFromSlice returns a twist from a slice of exactly six values, angular part first.
func NewTwistFromSlice(s []float64) (Twist, error) {
	if len(s) != 6 {
		return Twist{}, errors.Errorf("a twist has 6 components, got %d", len(s))
	}
	return NewTwist(s[0], s[1], s[2], s[3], s[4], s[5]), nil
}

// NewRevoluteScrew returns the unit screw axis of a revolute joint rotating about axis through point q.
// The axis is normalized; its linear part is -axis × q.
func NewRevoluteScrew(axis, q r3.Vector) (Twist, error) {
	if axis.Norm() == 0 {
		return Twist{}, errors.New("cannot use zero vector as rotation axis")
	}
	w := axis.Normalize()
	return Twist{Angular: w, Linear: w.Cross(q).Mul(-1)}, nil
}

// NewPrismaticScrew returns the unit screw axis of a prismatic joint translating along axis.
func NewPrismaticScrew(axis r3.Vector) (Twist, error) {
	if axis.Norm() == 0 {
		return Twist{}, errors.New("cannot use zero vector as translation axis")
	}
	return Twist{Linear: axis.Normalize()}, nil
}

// Vector returns the six components of the twist, angular part first.
func (tw Twist) Vector() [6]float64 {
	return [6]float64{tw.Angular.X, tw.Angular.Y, tw.Angular.Z, tw.Linear.X, tw.Linear.Y, tw.Linear.Z}
}

// IsFinite reports whether all six components are finite.
func (tw Twist) IsFinite() bool {
	for _, c := range tw.Vector() {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// CheckUnitScrew returns an error if the twist is not a normalized screw axis to within tol, i.e. if the angular
// part is neither unit length nor exactly zero, or if it is zero and the linear part is not unit length.
func (tw Twist) CheckUnitScrew(tol float64) error {
	if !tw.IsFinite() {
		return errors.Errorf("screw axis %v has non-finite components", tw.Vector())
	}
	wNorm := tw.Angular.Norm()
	if wNorm == 0 {
		if vNorm := tw.Linear.Norm(); math.Abs(vNorm-1) > tol {
			return errors.Errorf("prismatic screw axis must have unit linear part, got norm %v", vNorm)
		}
		return nil
	}
	if math.Abs(wNorm-1) > tol {
		return errors.Errorf("revolute screw axis must have unit angular part, got norm %v", wNorm)
	}
	return nil
}

// Exp returns the rigid body transform produced by moving theta along this screw axis.
func (tw Twist) Exp(theta float64) Transform {
	return ExpTwist(Bracket(tw), theta)
}

// TwistMatrix is the 4x4 matrix representation [V] of a twist, an element of se(3):
//
//	[ [w]  v ]
//	[  0   0 ]
type TwistMatrix mgl64.Mat4

// Bracket returns the matrix form of a twist.
func Bracket(tw Twist) TwistMatrix {
	w := Skew(tw.Angular)
	var m mgl64.Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, w.At(r, c))
		}
	}
	m.Set(0, 3, tw.Linear.X)
	m.Set(1, 3, tw.Linear.Y)
	m.Set(2, 3, tw.Linear.Z)
	return TwistMatrix(m)
}

// Unbracket recovers the twist from its matrix form.
func Unbracket(b TwistMatrix) Twist {
	m := mgl64.Mat4(b)
	return Twist{
		Angular: Unskew(m.Mat3()),
		Linear:  r3.Vector{X: m.At(0, 3), Y: m.At(1, 3), Z: m.At(2, 3)},
	}
}

// At returns the element at the given row and column.
func (b TwistMatrix) At(row, col int) float64 {
	return mgl64.Mat4(b).At(row, col)
}
