package domain

// State is the full set of inputs for one straight-line motion segment.
// All fields are in SI units.
type State struct {
	// Velocity is the initial speed; must be non-negative.
	Velocity Velocity

	// Acceleration is constant over the segment and may be negative.
	Acceleration Acceleration

	// Time is the elapsed duration; must be non-negative.
	Time Seconds

	// Distance is the initial position; must be non-negative.
	Distance Meters

	// Fuel is the fuel mass on board at the start; must be non-negative.
	Fuel Kilograms

	// FuelBurnRate is the constant consumption rate; must be non-negative.
	FuelBurnRate BurnRate
}

// Result holds the quantities derived from a State.
type Result struct {
	Velocity      Velocity
	Distance      Meters
	RemainingFuel Kilograms

	// OmittedDistance is the ½·a·t² term that Distance does not include.
	// It bounds the error of the constant-velocity distance approximation.
	OmittedDistance Meters
}
