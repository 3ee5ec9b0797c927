// Package spatialmath defines spatial mathematical operations: homogeneous transforms, twists and their exponentials.
package spatialmath

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a 4x4 homogeneous transform representing a rigid body pose, an element of SE(3):
//
//	[ R  p ]
//	[ 0  1 ]
//
// Transforms are immutable values; every operation returns a new Transform.
// The zero value is not a valid transform, use NewIdentityTransform instead.
type Transform struct {
	mat mgl64.Mat4
}

// NewIdentityTransform returns the identity transform.
func NewIdentityTransform() Transform {
	return Transform{mgl64.Ident4()}
}

// NewTransform returns a transform from a rotation matrix and a translation.
func NewTransform(rot mgl64.Mat3, p r3.Vector) Transform {
	m := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, rot.At(r, c))
		}
	}
	m.Set(0, 3, p.X)
	m.Set(1, 3, p.Y)
	m.Set(2, 3, p.Z)
	return Transform{m}
}

// NewTransformFromMat4 wraps a mgl64 matrix. No validation is done; see CheckSE3.
func NewTransformFromMat4(m mgl64.Mat4) Transform {
	return Transform{m}
}

// NewTransformFromRows builds a transform from a row major 4x4 literal.
func NewTransformFromRows(rows [4][4]float64) Transform {
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, rows[r][c])
		}
	}
	return Transform{m}
}

// NewTransformFromMatrix copies a gonum 4x4 matrix into a transform.
func NewTransformFromMatrix(a mat.Matrix) (Transform, error) {
	if r, c := a.Dims(); r != 4 || c != 4 {
		return Transform{}, errors.Errorf("homogeneous transform must be 4x4, got %dx%d", r, c)
	}
	var m mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.Set(r, c, a.At(r, c))
		}
	}
	return Transform{m}, nil
}

// At returns the element at the given row and column.
func (t Transform) At(row, col int) float64 {
	return t.mat.At(row, col)
}

// Rows returns the transform as a row major array.
func (t Transform) Rows() [4][4]float64 {
	var rows [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			rows[r][c] = t.mat.At(r, c)
		}
	}
	return rows
}

// RowMajor returns the 16 elements in row major order.
func (t Transform) RowMajor() []float64 {
	out := make([]float64, 0, 16)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out = append(out, t.mat.At(r, c))
		}
	}
	return out
}

// Dense returns a gonum copy of the transform.
func (t Transform) Dense() *mat.Dense {
	return mat.NewDense(4, 4, t.RowMajor())
}

// Rotation returns the upper left 3x3 rotation block.
func (t Transform) Rotation() mgl64.Mat3 {
	return t.mat.Mat3()
}

// Point returns the translation component.
func (t Transform) Point() r3.Vector {
	return r3.Vector{X: t.mat.At(0, 3), Y: t.mat.At(1, 3), Z: t.mat.At(2, 3)}
}

// Orientation returns the rotation block as a unit quaternion.
func (t Transform) Orientation() quat.Number {
	q := mgl64.Mat4ToQuat(t.mat)
	return quat.Number{Real: q.W, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

// Mul returns the composition t·by, i.e. by expressed in the frame of t.
func (t Transform) Mul(by Transform) Transform {
	return Transform{t.mat.Mul4(by.mat)}
}

// Inverse returns the inverse rigid transform [Rᵀ, -Rᵀp].
func (t Transform) Inverse() Transform {
	rt := t.Rotation().Transpose()
	p := rt.Mul3x1(mgl64.Vec3{t.mat.At(0, 3), t.mat.At(1, 3), t.mat.At(2, 3)})
	return NewTransform(rt, r3.Vector{X: -p[0], Y: -p[1], Z: -p[2]})
}

// IsFinite reports whether every element is finite.
func (t Transform) IsFinite() bool {
	for _, v := range t.mat {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CheckSE3 returns an error if the transform is not a valid rigid body transform: the elements must be finite, the
// bottom row must be exactly (0, 0, 0, 1), and the rotation block must satisfy |RᵀR - I| < tol (elementwise) and
// |det(R) - 1| < tol.
func (t Transform) CheckSE3(tol float64) error {
	if !t.IsFinite() {
		return errors.New("transform has non-finite elements")
	}
	if t.At(3, 0) != 0 || t.At(3, 1) != 0 || t.At(3, 2) != 0 || t.At(3, 3) != 1 {
		return errors.Errorf("transform bottom row must be (0, 0, 0, 1), got (%v, %v, %v, %v)",
			t.At(3, 0), t.At(3, 1), t.At(3, 2), t.At(3, 3))
	}
	rot := t.Rotation()
	if dev := OrthonormalityError(rot); dev >= tol {
		return errors.Errorf("rotation block is not orthonormal, |RᵀR - I| = %g", dev)
	}
	if det := rot.Det(); math.Abs(det-1) >= tol {
		return errors.Errorf("rotation block determinant must be 1, got %v", det)
	}
	return nil
}

// OrthonormalityError returns the largest elementwise deviation of RᵀR from the identity.
func OrthonormalityError(rot mgl64.Mat3) float64 {
	d := rot.Transpose().Mul3(rot).Sub(mgl64.Ident3())
	return floats.Norm(d[:], math.Inf(1))
}

// TransformDistance returns the largest componentwise absolute difference between two transforms, or NaN if either
// has non-finite elements.
func TransformDistance(a, b Transform) float64 {
	if !a.IsFinite() || !b.IsFinite() {
		return math.NaN()
	}
	return floats.Distance(a.mat[:], b.mat[:], math.Inf(1))
}

// TransformAlmostEqual returns whether every component of the two transforms differs by at most tol.
func TransformAlmostEqual(a, b Transform, tol float64) bool {
	return TransformDistance(a, b) <= tol
}

// String prints the transform one row per line.
func (t Transform) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("[% .6f % .6f % .6f % .6f]", t.At(r, 0), t.At(r, 1), t.At(r, 2), t.At(r, 3)))
	}
	return sb.String()
}
