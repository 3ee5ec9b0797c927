package scara

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/scarakin/kinematics"
	"go.viam.com/scarakin/referenceframe"
	"go.viam.com/scarakin/spatialmath"
)

// Frame names returned by LinkFrames, base first.
var linkFrameNames = []string{"base", "link1", "link2", "link3", "flange", "tool"}

// LinkFrameNames returns the names of the frames returned by LinkFrames, in order.
func LinkFrameNames() []string {
	return append([]string(nil), linkFrameNames...)
}

// ReferenceTransform computes the end effector pose by composing elementary translations and rotations along the
// physical assembly of the arm. It shares nothing with the screw axis model and exists to cross check it.
func (g Geometry) ReferenceTransform(inputs []referenceframe.Input) (spatialmath.Transform, error) {
	frames, err := g.LinkFrames(inputs)
	if err != nil {
		return spatialmath.Transform{}, err
	}
	return frames[len(frames)-1], nil
}

// LinkFrames returns the pose in the base frame of every frame along the chain, named as in LinkFrameNames.
func (g Geometry) LinkFrames(inputs []referenceframe.Input) ([]spatialmath.Transform, error) {
	if err := referenceframe.ValidateInputs(inputs, DoF); err != nil {
		return nil, kinematics.NewInvalidInputError(err)
	}
	steps := g.linkSteps(inputs[0].Value, inputs[1].Value, inputs[2].Value, inputs[3].Value)

	frames := make([]spatialmath.Transform, 0, len(steps)+1)
	pose := spatialmath.NewIdentityTransform()
	frames = append(frames, pose)
	for _, step := range steps {
		pose = pose.Mul(step)
		frames = append(frames, pose)
	}
	if !pose.IsFinite() {
		return nil, errors.Errorf("reference chain produced a non-finite pose for inputs %v", referenceframe.InputsToFloats(inputs))
	}
	return frames, nil
}

// linkSteps returns the relative transform of each link with respect to the previous one.
func (g Geometry) linkSteps(theta1, theta2, theta3, d4 float64) []spatialmath.Transform {
	return []spatialmath.Transform{
		// base to link 1: up to the first link, turned by joint 1
		spatialmath.Compose(spatialmath.NewTranslation(r3.Vector{Z: g.H1}), spatialmath.NewRotationZ(theta1)),
		// link 1 to link 2: out along link 1, turned by joint 2
		spatialmath.Compose(spatialmath.NewTranslation(r3.Vector{X: g.L1}), spatialmath.NewRotationZ(theta2)),
		// link 2 to link 3: out along link 2 to the joint 3 axis
		spatialmath.NewTranslation(r3.Vector{X: g.L2}),
		// link 3 to flange: the quill travels by joint 4 down to the tool stack and spins by joint 3
		spatialmath.Compose(
			spatialmath.NewTranslation(r3.Vector{Z: d4 + g.FlangeOffset + g.ToolOffset - g.H1}),
			spatialmath.NewRotationZ(theta3),
		),
		// flange to tool
		toolOrientation(),
	}
}
