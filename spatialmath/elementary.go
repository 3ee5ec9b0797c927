package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// NewTranslation returns a transform that translates by p without rotating.
func NewTranslation(p r3.Vector) Transform {
	return NewTransformFromMat4(mgl64.Translate3D(p.X, p.Y, p.Z))
}

// NewRotationX returns a transform rotating by angle radians about the x axis.
func NewRotationX(angle float64) Transform {
	return NewTransformFromMat4(mgl64.HomogRotate3DX(angle))
}

// NewRotationY returns a transform rotating by angle radians about the y axis.
func NewRotationY(angle float64) Transform {
	return NewTransformFromMat4(mgl64.HomogRotate3DY(angle))
}

// NewRotationZ returns a transform rotating by angle radians about the z axis.
func NewRotationZ(angle float64) Transform {
	return NewTransformFromMat4(mgl64.HomogRotate3DZ(angle))
}

// Compose multiplies the transforms left to right. Composing nothing gives the identity.
func Compose(ts ...Transform) Transform {
	out := NewIdentityTransform()
	for _, t := range ts {
		out = out.Mul(t)
	}
	return out
}
