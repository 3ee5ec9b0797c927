package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func randomUnitVector(rSeed *rand.Rand) r3.Vector {
	for {
		v := r3.Vector{X: rSeed.Float64()*2 - 1, Y: rSeed.Float64()*2 - 1, Z: rSeed.Float64()*2 - 1}
		if n := v.Norm(); n > 1e-3 {
			return v.Mul(1 / n)
		}
	}
}

func TestExpTwistZeroIsIdentity(t *testing.T) {
	for _, tw := range []Twist{
		NewTwist(0, 0, 1, 0, 0, 0),
		NewTwist(0, 0, 1, 0, -0.55, 0),
		NewTwist(0, 0, 0, 0, 0, 1),
		NewTwist(1, 2, 3, 4, 5, 6),
		NewTwist(0, 0, 0, 0, 0, 0),
	} {
		test.That(t, ExpTwist(Bracket(tw), 0).Rows(), test.ShouldResemble, NewIdentityTransform().Rows())
		test.That(t, tw.Exp(0), test.ShouldResemble, NewIdentityTransform())
	}
}

func TestExpTwistRevolute(t *testing.T) {
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := randomUnitVector(rSeed)
		v := r3.Vector{X: rSeed.Float64() - 0.5, Y: rSeed.Float64() - 0.5, Z: rSeed.Float64() - 0.5}
		theta := (rSeed.Float64()*2 - 1) * 2 * math.Pi

		got := ExpTwist(Bracket(Twist{w, v}), theta)
		test.That(t, got.CheckSE3(1e-9), test.ShouldBeNil)

		// Rodrigues' rotation about w by theta
		rot := mgl64.HomogRotate3D(theta, mgl64.Vec3{w.X, w.Y, w.Z}).Mat3()
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				test.That(t, got.At(r, c), test.ShouldAlmostEqual, rot.At(r, c), 1e-9)
			}
		}

		// p = (I - R)(w × v) + w wᵀ v θ
		wxv := w.Cross(v)
		rwxv := rot.Mul3x1(mgl64.Vec3{wxv.X, wxv.Y, wxv.Z})
		p := wxv.Sub(r3.Vector{X: rwxv[0], Y: rwxv[1], Z: rwxv[2]}).Add(w.Mul(w.Dot(v) * theta))
		test.That(t, got.Point().X, test.ShouldAlmostEqual, p.X, 1e-9)
		test.That(t, got.Point().Y, test.ShouldAlmostEqual, p.Y, 1e-9)
		test.That(t, got.Point().Z, test.ShouldAlmostEqual, p.Z, 1e-9)
	}
}

func TestExpTwistPrismatic(t *testing.T) {
	v := r3.Vector{X: 1, Y: 2, Z: 2}.Mul(1. / 3)
	got := ExpTwist(Bracket(Twist{Linear: v}), 0.75)
	test.That(t, got.Rotation(), test.ShouldResemble, mgl64.Ident3())
	test.That(t, got.Point().X, test.ShouldAlmostEqual, 0.25)
	test.That(t, got.Point().Y, test.ShouldAlmostEqual, 0.5)
	test.That(t, got.Point().Z, test.ShouldAlmostEqual, 0.5)
	test.That(t, got.At(3, 3), test.ShouldEqual, 1.)
}

func TestExpTwistMatchesNumeric(t *testing.T) {
	//nolint:gosec
	rSeed := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		var tw Twist
		if i%4 == 0 {
			tw = Twist{Linear: randomUnitVector(rSeed)}
		} else {
			tw = Twist{
				Angular: randomUnitVector(rSeed),
				Linear:  r3.Vector{X: rSeed.Float64() - 0.5, Y: rSeed.Float64() - 0.5, Z: rSeed.Float64() - 0.5},
			}
		}
		theta := (rSeed.Float64()*2 - 1) * math.Pi
		closed := ExpTwist(Bracket(tw), theta)
		numeric := ExpTwistNumeric(Bracket(tw), theta)
		test.That(t, TransformDistance(closed, numeric), test.ShouldBeLessThanOrEqualTo, 1e-9)
	}
}

func TestExpTwistUnnormalized(t *testing.T) {
	// angular part of length 2: the result must still be a rigid transform and match the true exponential
	tw := NewTwist(0, 0, 2, 0, -0.6, 0)
	for _, theta := range []float64{0.1, 1, math.Pi / 2, -2.5} {
		closed := ExpTwist(Bracket(tw), theta)
		test.That(t, closed.CheckSE3(1e-9), test.ShouldBeNil)
		test.That(t, TransformDistance(closed, ExpTwistNumeric(Bracket(tw), theta)), test.ShouldBeLessThanOrEqualTo, 1e-9)
	}
	test.That(t, ExpTwist(Bracket(tw), 0), test.ShouldResemble, NewIdentityTransform())

	// equivalent to the unit screw moved twice as far
	unit := NewTwist(0, 0, 1, 0, -0.3, 0)
	test.That(t, TransformAlmostEqual(ExpTwist(Bracket(tw), 0.4), ExpTwist(Bracket(unit), 0.8), 1e-12), test.ShouldBeTrue)
}

func TestExpTwistLargeAngles(t *testing.T) {
	// the translation must stay bounded by the axis offset however many turns are made
	s, err := NewRevoluteScrew(r3.Vector{Z: 1}, r3.Vector{X: 0.3})
	test.That(t, err, test.ShouldBeNil)
	for _, theta := range []float64{1e6, -1e8, 1e10, 1e12} {
		got := s.Exp(theta)
		test.That(t, got.CheckSE3(1e-9), test.ShouldBeNil)
		sin, cos := math.Sincos(theta)
		// rotating the origin about the axis through (0.3, 0, 0)
		test.That(t, got.Point().X, test.ShouldAlmostEqual, 0.3-0.3*cos, 1e-12)
		test.That(t, got.Point().Y, test.ShouldAlmostEqual, -0.3*sin, 1e-12)
		test.That(t, got.Point().Z, test.ShouldEqual, 0.)
	}

	// the pitch term is still linear in theta
	pitched := NewTwist(0, 0, 1, 0, 0, 0.01)
	got := pitched.Exp(1e6)
	test.That(t, got.Point().Z, test.ShouldAlmostEqual, 1e4, 1e-9)
}

func TestExpTwistAboutOffsetAxis(t *testing.T) {
	// rotating by pi/2 about the z axis through (0.3, 0, 0) carries the origin to (0.3, -0.3, 0)
	s, err := NewRevoluteScrew(r3.Vector{Z: 1}, r3.Vector{X: 0.3})
	test.That(t, err, test.ShouldBeNil)
	got := s.Exp(math.Pi / 2)
	test.That(t, got.Point().X, test.ShouldAlmostEqual, 0.3)
	test.That(t, got.Point().Y, test.ShouldAlmostEqual, -0.3)
	test.That(t, got.Point().Z, test.ShouldAlmostEqual, 0.)
}
