package motion

import (
	"github.com/bft-labs/motioncalc/internal/domain"
)

type check struct {
	field  string
	value  float64
	signed bool
	reason string
}

// Validate checks s against the range constraints and the fuel budget.
// Checks run in a fixed order and the first failure is returned as a
// *domain.ValidationError. A nil return means s is safe to compute.
func Validate(s domain.State) error {
	checks := []check{
		{domain.FieldVelocity, float64(s.Velocity), false, "Velocity must be a non-negative number (m/s)"},
		{domain.FieldAcceleration, float64(s.Acceleration), true, "Acceleration must be a number (m/s²)"},
		{domain.FieldTime, float64(s.Time), false, "Time must be a non-negative number (seconds)"},
		{domain.FieldDistance, float64(s.Distance), false, "Distance must be a non-negative number (meters)"},
		{domain.FieldFuel, float64(s.Fuel), false, "Fuel must be a non-negative number (kg)"},
		{domain.FieldFuelBurnRate, float64(s.FuelBurnRate), false, "Fuel burn rate must be a non-negative number (kg/s)"},
	}

	for _, c := range checks {
		if !domain.IsNumber(c.value) || (!c.signed && c.value < 0) {
			return domain.NewValidationError(c.field, c.reason)
		}
	}

	if s.FuelBurnRate.Over(s.Time) > s.Fuel {
		return domain.NewInsufficientFuelError()
	}
	return nil
}
