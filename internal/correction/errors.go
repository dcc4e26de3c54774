package correction

import (
	"errors"
	"fmt"

	"github.com/bbernstein/gthc/internal/region"
)

var (
	// ErrInvalidArgument matches any *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfDomain matches any *OutOfDomainError.
	ErrOutOfDomain = errors.New("station outside model region")
)

// InvalidArgumentError is returned for malformed input vectors or an out of
// range day of year.
type InvalidArgumentError struct {
	Message string
	Err     error
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid argument: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("invalid argument: %s", e.Message)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgumentError creates a new invalid argument error
func NewInvalidArgumentError(message string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{
		Message: message,
		Err:     err,
	}
}

// OutOfDomainError is returned when the base or user station lies outside
// the region the model coefficients are valid for.
type OutOfDomainError struct {
	Box region.BoundingBox
}

func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("station coordinates outside Hong Kong region; "+
		"this model is specifically designed for the Hong Kong area (%s)", e.Box)
}

func (e *OutOfDomainError) Is(target error) bool {
	return target == ErrOutOfDomain
}

func NewOutOfDomainError(box region.BoundingBox) *OutOfDomainError {
	return &OutOfDomainError{Box: box}
}
