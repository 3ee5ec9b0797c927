// Package kinematics evaluates the forward kinematics of serial chains described as a list of screw axes expressed
// in the base frame plus a home configuration, using the product of exponentials formula.
package kinematics

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/scarakin/referenceframe"
	"go.viam.com/scarakin/spatialmath"
	"go.viam.com/scarakin/utils"
)

// screwTolerance is how far from unit length a screw axis may be before the model is rejected.
const screwTolerance = 1e-9

// JointType distinguishes the two kinds of single DoF joints a screw axis can describe.
type JointType int

const (
	// Revolute joints rotate about their screw axis; inputs are radians.
	Revolute JointType = iota
	// Prismatic joints translate along their screw axis; inputs are meters.
	Prismatic
)

func (jt JointType) String() string {
	switch jt {
	case Revolute:
		return "revolute"
	case Prismatic:
		return "prismatic"
	default:
		return fmt.Sprintf("JointType(%d)", int(jt))
	}
}

// Model is an immutable kinematic chain: one screw axis per joint, expressed in the base frame with the robot at
// its zero configuration, plus the home transform M of the end effector at that configuration.
// A Model is safe for concurrent use.
type Model struct {
	name   string
	screws []spatialmath.Twist
	home   spatialmath.Transform
}

// NewModel validates and returns a model. Every screw must be a unit screw axis and the home transform must be a
// rigid transform; all problems found are reported together, wrapped in ErrNumericDegeneracy.
func NewModel(name string, screws []spatialmath.Twist, home spatialmath.Transform) (*Model, error) {
	var errs error
	if len(screws) == 0 {
		errs = multierr.Append(errs, errors.New("model needs at least one screw axis"))
	}
	for i, s := range screws {
		if err := s.CheckUnitScrew(screwTolerance); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "joint %d", i+1))
		}
	}
	if err := home.CheckSE3(screwTolerance); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "home transform"))
	}
	if errs != nil {
		return nil, errors.Wrapf(ErrNumericDegeneracy, "model %q: %v", name, errs)
	}

	return &Model{
		name:   name,
		screws: append([]spatialmath.Twist(nil), screws...),
		home:   home,
	}, nil
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.name
}

// DoF returns the number of joints.
func (m *Model) DoF() int {
	return len(m.screws)
}

// Screw returns the screw axis of joint i, where i is 0-based (joint 1 is index 0).
func (m *Model) Screw(i int) (spatialmath.Twist, error) {
	if i < 0 || i >= len(m.screws) {
		return spatialmath.Twist{}, errors.Errorf("joint index %d out of range [0, %d)", i, len(m.screws))
	}
	return m.screws[i], nil
}

// Screws returns a copy of all screw axes in joint order.
func (m *Model) Screws() []spatialmath.Twist {
	return append([]spatialmath.Twist(nil), m.screws...)
}

// Home returns the end effector pose at the zero configuration.
func (m *Model) Home() spatialmath.Transform {
	return m.home
}

// JointType returns whether joint i (0-based) is revolute or prismatic.
func (m *Model) JointType(i int) (JointType, error) {
	s, err := m.Screw(i)
	if err != nil {
		return 0, err
	}
	if s.Angular.Norm() == 0 {
		return Prismatic, nil
	}
	return Revolute, nil
}

// InputsFromDegrees converts user facing joint values to inputs: revolute joints are converted from degrees to
// radians, prismatic joints are passed through unchanged.
func (m *Model) InputsFromDegrees(values []float64) ([]referenceframe.Input, error) {
	if len(values) != m.DoF() {
		return nil, NewInvalidInputError(referenceframe.NewIncorrectDoFError(len(values), m.DoF()))
	}
	inputs := make([]referenceframe.Input, len(values))
	for i, v := range values {
		jt, err := m.JointType(i)
		if err != nil {
			return nil, err
		}
		if jt == Revolute {
			v = utils.DegToRad(v)
		}
		inputs[i] = referenceframe.Input{Value: v}
	}
	return inputs, nil
}
