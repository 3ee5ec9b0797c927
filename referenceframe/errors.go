package referenceframe

import "github.com/pkg/errors"

// NewIncorrectDoFError returns an error indicating that the number of inputs does not match the frame's degrees of
// freedom.
func NewIncorrectDoFError(actual, expected int) error {
	return errors.Errorf("number of inputs does not match frame DoF, expected %d but got %d", expected, actual)
}

// NewNonFiniteInputError returns an error indicating that an input is NaN or infinite.
func NewNonFiniteInputError(index int, value float64) error {
	return errors.Errorf("input %d is not finite: %v", index, value)
}
