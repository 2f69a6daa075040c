package domain

import "errors"

var (
	// ErrInvalidParameter is matched by every validation failure.
	ErrInvalidParameter = errors.New("motioncalc: invalid parameter")

	// ErrInsufficientFuel is matched when the burn over the elapsed time
	// exceeds the fuel on board.
	ErrInsufficientFuel = errors.New("motioncalc: insufficient fuel")
)

// Parameter names reported in ValidationError.Field.
const (
	FieldVelocity     = "velocity"
	FieldAcceleration = "acceleration"
	FieldTime         = "time"
	FieldDistance     = "distance"
	FieldFuel         = "fuel"
	FieldFuelBurnRate = "fuelBurnRate"
)

// ValidationError describes the first constraint a State violates.
// Its message is meant to be shown to the user as is.
type ValidationError struct {
	Field  string
	Reason string

	kind error
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NewInsufficientFuelError returns the error for a burn that exceeds the fuel on board.
func NewInsufficientFuelError() *ValidationError {
	return &ValidationError{
		Field:  FieldFuel,
		Reason: "Insufficient fuel for the given time duration",
		kind:   ErrInsufficientFuel,
	}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrInvalidParameter or the error's specific kind.
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidParameter {
		return true
	}
	return e.kind != nil && target == e.kind
}
