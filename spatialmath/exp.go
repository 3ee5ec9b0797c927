package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// ExpTwist computes the matrix exponential exp([V]θ) of a twist matrix scaled by a joint value, using the closed form
// screw motion:
//
//	R = I + sinθ[w] + (1-cosθ)[w]²
//	p = (I - R)(w × v) + w wᵀ v θ
//
// This equals (Iθ + (1-cosθ)[w] + (θ-sinθ)[w]²)v without the cancelling θ terms of that form.
//
// If the angular part is zero the result is a pure translation by θv. If the angular part is neither zero nor unit
// length the screw is normalized first: with k = |w| the motion is the unit screw (w/k, v/k) moved by kθ, which is
// the exact exponential of θ[V]. The result is always an element of SE(3), and exactly the identity when θ is 0.
func ExpTwist(b TwistMatrix, theta float64) Transform {
	if theta == 0 {
		return NewIdentityTransform()
	}
	tw := Unbracket(b)
	w, v := tw.Angular, tw.Linear

	k := w.Norm()
	if k == 0 {
		return NewTranslation(v.Mul(theta))
	}
	if k != 1 {
		w = w.Mul(1 / k)
		v = v.Mul(1 / k)
		theta *= k
	}

	sin, cos := math.Sincos(theta)
	skew := Skew(w)
	skew2 := skew.Mul3(skew)

	rot := mgl64.Ident3().Add(skew.Mul(sin)).Add(skew2.Mul(1 - cos))
	wxv := w.Cross(v)
	moved := mgl64.Ident3().Sub(rot).Mul3x1(mgl64.Vec3{wxv.X, wxv.Y, wxv.Z})
	p := r3.Vector{X: moved[0], Y: moved[1], Z: moved[2]}.Add(w.Mul(w.Dot(v) * theta))

	return NewTransform(rot, p)
}

// ExpTwistNumeric computes exp([V]θ) with a general purpose Padé scaling and squaring matrix exponential. It makes no
// assumption about screw normalization and is slower than ExpTwist; it is kept as an independent check of the
// closed form.
func ExpTwistNumeric(b TwistMatrix, theta float64) Transform {
	m := mgl64.Mat4(b)
	a := mat.NewDense(4, 4, nil)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			a.Set(r, c, theta*m.At(r, c))
		}
	}
	var e mat.Dense
	e.Exp(a)
	t, err := NewTransformFromMatrix(&e)
	if err != nil {
		// a 4x4 input always yields a 4x4 exponential
		panic(err)
	}
	return t
}
