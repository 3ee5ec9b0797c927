package kinematics

import (
	"github.com/pkg/errors"

	"go.viam.com/scarakin/referenceframe"
	"go.viam.com/scarakin/spatialmath"
)

// ForwardKinematics returns the end effector pose in the base frame for the given joint values using the product of
// exponentials:
//
//	T(θ) = exp([S1]θ1) · exp([S2]θ2) · ... · exp([Sn]θn) · M
//
// The exponentials are composed left to right in joint order; the product does not commute.
// Inputs of the wrong length or with non-finite values are rejected with ErrInvalidInput before any computation.
func (m *Model) ForwardKinematics(inputs []referenceframe.Input) (spatialmath.Transform, error) {
	if err := referenceframe.ValidateInputs(inputs, m.DoF()); err != nil {
		return spatialmath.Transform{}, NewInvalidInputError(err)
	}

	pose := spatialmath.NewIdentityTransform()
	for i, s := range m.screws {
		pose = pose.Mul(spatialmath.ExpTwist(spatialmath.Bracket(s), inputs[i].Value))
	}
	pose = pose.Mul(m.home)

	if !pose.IsFinite() {
		return spatialmath.Transform{}, errors.Errorf("forward kinematics of %q produced a non-finite pose for inputs %v",
			m.name, referenceframe.InputsToFloats(inputs))
	}
	return pose, nil
}

// ForwardKinematicsFloats is ForwardKinematics for raw joint values.
func (m *Model) ForwardKinematicsFloats(values []float64) (spatialmath.Transform, error) {
	return m.ForwardKinematics(referenceframe.FloatsToInputs(values))
}

// JointTransforms returns the individual exponentials exp([Si]θi) in joint order, without the home transform.
func (m *Model) JointTransforms(inputs []referenceframe.Input) ([]spatialmath.Transform, error) {
	if err := referenceframe.ValidateInputs(inputs, m.DoF()); err != nil {
		return nil, NewInvalidInputError(err)
	}
	out := make([]spatialmath.Transform, 0, len(m.screws))
	for i, s := range m.screws {
		out = append(out, spatialmath.ExpTwist(spatialmath.Bracket(s), inputs[i].Value))
	}
	return out, nil
}
