package scara

import (
	"go.viam.com/scarakin/kinematics"
	"go.viam.com/scarakin/logging"
	"go.viam.com/scarakin/referenceframe"
	"go.viam.com/scarakin/spatialmath"
)

// Arm is a SCARA arm with fixed geometry. It is immutable and safe for concurrent use.
type Arm struct {
	name     string
	geometry Geometry
	model    *kinematics.Model
	logger   logging.Logger
}

// NewArm builds the kinematic model for the given geometry. Malformed geometry fails here rather than at query time.
func NewArm(name string, g Geometry, logger logging.Logger) (*Arm, error) {
	model, err := NewModel(name, g)
	if err != nil {
		return nil, err
	}
	logger.Debugw("built screw axis model", "name", name, "dof", model.DoF(), "reach", g.Reach(), "tool_height", g.ToolHeight())
	return &Arm{name: name, geometry: g, model: model, logger: logger}, nil
}

// Name returns the name of the arm.
func (a *Arm) Name() string {
	return a.name
}

// Geometry returns the link dimensions of the arm.
func (a *Arm) Geometry() Geometry {
	return a.geometry
}

// Model returns the screw axis model of the arm.
func (a *Arm) Model() *kinematics.Model {
	return a.model
}

// ForwardKinematics returns the end effector pose using the product of exponentials.
func (a *Arm) ForwardKinematics(inputs []referenceframe.Input) (spatialmath.Transform, error) {
	return a.model.ForwardKinematics(inputs)
}

// ForwardKinematicsFloats is ForwardKinematics for raw joint values.
func (a *Arm) ForwardKinematicsFloats(values []float64) (spatialmath.Transform, error) {
	return a.model.ForwardKinematicsFloats(values)
}

// ForwardKinematicsReference returns the end effector pose using the elementary transform chain.
func (a *Arm) ForwardKinematicsReference(inputs []referenceframe.Input) (spatialmath.Transform, error) {
	return a.geometry.ReferenceTransform(inputs)
}

// Compare evaluates both formulations and returns them with their largest componentwise difference.
func (a *Arm) Compare(inputs []referenceframe.Input) (poe, ref spatialmath.Transform, deviation float64, err error) {
	poe, err = a.ForwardKinematics(inputs)
	if err != nil {
		return spatialmath.Transform{}, spatialmath.Transform{}, 0, err
	}
	ref, err = a.ForwardKinematicsReference(inputs)
	if err != nil {
		return spatialmath.Transform{}, spatialmath.Transform{}, 0, err
	}
	deviation = spatialmath.TransformDistance(poe, ref)
	a.logger.Debugw("compared formulations", "joints", referenceframe.InputsToFloats(inputs), "deviation", deviation)
	return poe, ref, deviation, nil
}
