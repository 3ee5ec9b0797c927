// Package scara describes a 4 DoF SCARA arm (three revolute joints about the vertical axis followed by a vertical
// prismatic joint) and computes its forward kinematics two independent ways: with the product of exponentials over
// screw axes, and with an explicit chain of elementary translations and rotations.
package scara

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/scarakin/kinematics"
	"go.viam.com/scarakin/spatialmath"
	"go.viam.com/scarakin/utils"
)

// DoF is the number of joints of the arm.
const DoF = 4

// Geometry holds the link dimensions of the arm in meters.
type Geometry struct {
	// L1 is the horizontal distance from joint 1 to joint 2.
	L1 float64 `json:"l1"`
	// L2 is the horizontal distance from joint 2 to joint 3.
	L2 float64 `json:"l2"`
	// H1 is the height of the first link above the base.
	H1 float64 `json:"h1"`
	// FlangeOffset and ToolOffset make up the vertical stack from the base plane to the tool center point at the zero
	// configuration.
	FlangeOffset float64 `json:"flange_offset"`
	ToolOffset   float64 `json:"tool_offset"`
}

// DefaultGeometry returns the published dimensions of the arm.
func DefaultGeometry() Geometry {
	return Geometry{
		L1:           0.3,
		L2:           0.25,
		H1:           0.2577,
		FlangeOffset: 0.0402,
		ToolOffset:   0.180,
	}
}

// Validate checks that every dimension is finite and that the link lengths are positive.
func (g Geometry) Validate() error {
	var errs error
	for _, f := range []struct {
		name     string
		value    float64
		positive bool
	}{
		{"l1", g.L1, true},
		{"l2", g.L2, true},
		{"h1", g.H1, false},
		{"flange_offset", g.FlangeOffset, false},
		{"tool_offset", g.ToolOffset, false},
	} {
		switch {
		case !utils.IsFinite(f.value):
			errs = multierr.Append(errs, errors.Errorf("%s must be finite, got %v", f.name, f.value))
		case f.positive && f.value <= 0:
			errs = multierr.Append(errs, errors.Errorf("%s must be positive, got %v", f.name, f.value))
		case f.value < 0:
			errs = multierr.Append(errs, errors.Errorf("%s must not be negative, got %v", f.name, f.value))
		}
	}
	return errs
}

// Reach is the horizontal distance from joint 1 to the tool axis at the zero configuration.
func (g Geometry) Reach() float64 {
	return g.L1 + g.L2
}

// ToolHeight is the height of the tool center point above the base plane at the zero configuration. The first link
// height does not enter: the tool stack is measured from the base plane.
func (g Geometry) ToolHeight() float64 {
	return g.FlangeOffset + g.ToolOffset
}

// toolOrientation reorients the base axes to the end effector convention: the tool z axis points along base +x and
// the tool x axis along base -z.
func toolOrientation() spatialmath.Transform {
	return spatialmath.NewRotationY(math.Pi / 2)
}

// ScrewAxes returns the screw axes of the four joints in the base frame, joint 1 first.
func (g Geometry) ScrewAxes() ([]spatialmath.Twist, error) {
	up := r3.Vector{Z: 1}
	s1, err := spatialmath.NewRevoluteScrew(up, r3.Vector{})
	if err != nil {
		return nil, err
	}
	s2, err := spatialmath.NewRevoluteScrew(up, r3.Vector{X: g.L1, Z: g.H1})
	if err != nil {
		return nil, err
	}
	s3, err := spatialmath.NewRevoluteScrew(up, r3.Vector{X: g.Reach(), Z: g.H1})
	if err != nil {
		return nil, err
	}
	s4, err := spatialmath.NewPrismaticScrew(up)
	if err != nil {
		return nil, err
	}
	return []spatialmath.Twist{s1, s2, s3, s4}, nil
}

// HomeTransform returns M, the end effector pose at the zero configuration.
func (g Geometry) HomeTransform() spatialmath.Transform {
	return spatialmath.NewTranslation(r3.Vector{X: g.Reach(), Z: g.ToolHeight()}).Mul(toolOrientation())
}

// NewModel validates the geometry and builds the screw axis model of the arm.
func NewModel(name string, g Geometry) (*kinematics.Model, error) {
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid geometry")
	}
	screws, err := g.ScrewAxes()
	if err != nil {
		return nil, err
	}
	return kinematics.NewModel(name, screws, g.HomeTransform())
}
