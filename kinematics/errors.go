package kinematics

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var (
	// ErrInvalidInput is returned when a joint vector has the wrong length or contains non-finite values. No
	// computation is done in that case.
	ErrInvalidInput = errors.New("invalid joint input")

	// ErrNumericDegeneracy is returned when a model is built from a malformed screw axis or home transform. It is a
	// configuration error and is raised at construction time.
	ErrNumericDegeneracy = errors.New("degenerate kinematic model")
)

// NewInvalidInputError marks a joint input validation error as ErrInvalidInput while keeping the original error in the
// chain; both match with errors.Is and multierr.Errors returns them separately.
func NewInvalidInputError(err error) error {
	return multierr.Combine(ErrInvalidInput, err)
}
