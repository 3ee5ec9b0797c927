package kinematics

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/test"
	"golang.org/x/sync/errgroup"

	"go.viam.com/scarakin/referenceframe"
	"go.viam.com/scarakin/spatialmath"
)

func TestForwardKinematicsPlanar(t *testing.T) {
	m := planar2R(t)

	for _, tc := range []struct {
		name   string
		joints []float64
		x, y   float64
		yaw    float64
	}{
		{"home", []float64{0, 0}, 2, 0, 0},
		{"shoulder quarter turn", []float64{math.Pi / 2, 0}, 0, 2, math.Pi / 2},
		{"elbow quarter turn", []float64{0, math.Pi / 2}, 1, 1, math.Pi / 2},
		{"folded", []float64{0, math.Pi}, 0, 0, math.Pi},
		{"both", []float64{math.Pi / 2, -math.Pi / 2}, 1, 1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pose, err := m.ForwardKinematicsFloats(tc.joints)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, pose.Point().X, test.ShouldAlmostEqual, tc.x)
			test.That(t, pose.Point().Y, test.ShouldAlmostEqual, tc.y)
			test.That(t, pose.Point().Z, test.ShouldAlmostEqual, 0.)
			test.That(t, pose.At(0, 0), test.ShouldAlmostEqual, math.Cos(tc.yaw))
			test.That(t, pose.At(1, 0), test.ShouldAlmostEqual, math.Sin(tc.yaw))
			test.That(t, pose.CheckSE3(1e-9), test.ShouldBeNil)
		})
	}
}

func TestForwardKinematicsInvalidInput(t *testing.T) {
	m := planar2R(t)

	for _, joints := range [][]float64{
		{0},
		{0, 0, 0},
		nil,
		{math.NaN(), 0},
		{0, math.Inf(1)},
	} {
		_, err := m.ForwardKinematicsFloats(joints)
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, errors.Is(err, ErrInvalidInput), test.ShouldBeTrue)

		_, err = m.JointTransforms(referenceframe.FloatsToInputs(joints))
		test.That(t, errors.Is(err, ErrInvalidInput), test.ShouldBeTrue)
	}
}

func TestForwardKinematicsInvalidInputKeepsCause(t *testing.T) {
	m := planar2R(t)

	_, err := m.ForwardKinematicsFloats([]float64{0, 0, 0})
	test.That(t, errors.Is(err, ErrInvalidInput), test.ShouldBeTrue)
	errs := multierr.Errors(err)
	test.That(t, errs, test.ShouldHaveLength, 2)
	test.That(t, errs[0], test.ShouldEqual, ErrInvalidInput)
	test.That(t, errs[1].Error(), test.ShouldEqual, referenceframe.NewIncorrectDoFError(3, 2).Error())

	_, err = m.ForwardKinematicsFloats([]float64{0, math.NaN()})
	errs = multierr.Errors(err)
	test.That(t, errs, test.ShouldHaveLength, 2)
	test.That(t, errs[1].Error(), test.ShouldEqual, referenceframe.NewNonFiniteInputError(1, math.NaN()).Error())
}

func TestJointTransforms(t *testing.T) {
	m := planar2R(t)
	inputs := referenceframe.FloatsToInputs([]float64{0.3, -1.2})

	exps, err := m.JointTransforms(inputs)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, exps, test.ShouldHaveLength, 2)

	pose, err := m.ForwardKinematics(inputs)
	test.That(t, err, test.ShouldBeNil)
	composed := spatialmath.Compose(exps[0], exps[1], m.Home())
	test.That(t, spatialmath.TransformAlmostEqual(pose, composed, 1e-12), test.ShouldBeTrue)
}

func TestForwardKinematicsConcurrent(t *testing.T) {
	m := planar2R(t)
	want, err := m.ForwardKinematicsFloats([]float64{0.4, 0.9})
	test.That(t, err, test.ShouldBeNil)

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			got, err := m.ForwardKinematicsFloats([]float64{0.4, 0.9})
			if err != nil {
				return err
			}
			if !spatialmath.TransformAlmostEqual(got, want, 0) {
				return errors.Errorf("concurrent result differs:\n%v\n%v", got, want)
			}
			return nil
		})
	}
	test.That(t, g.Wait(), test.ShouldBeNil)
}
