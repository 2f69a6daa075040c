package domain

import "math"

// Velocity is a speed in metres per second.
type Velocity float64

// Acceleration is a rate of change of velocity in metres per second squared.
type Acceleration float64

// Seconds is an elapsed duration in seconds.
type Seconds float64

// Meters is a distance along the line of motion.
type Meters float64

// Kilograms is a fuel mass.
type Kilograms float64

// BurnRate is a fuel consumption rate in kilograms per second.
type BurnRate float64

const (
	secondsPerHour = 3600
	metersPerKm    = 1000
)

// VelocityFromKmh converts a speed given in km/h to m/s.
// It divides first so that any finite input stays finite.
func VelocityFromKmh(kmh float64) Velocity {
	return Velocity(kmh / secondsPerHour * metersPerKm)
}

// Kmh returns the velocity in km/h.
func (v Velocity) Kmh() float64 {
	return float64(v) / metersPerKm * secondsPerHour
}

// Over returns the distance covered at speed v during t.
func (v Velocity) Over(t Seconds) Meters {
	return Meters(float64(v) * float64(t))
}

// Over returns the change in velocity produced by a during t.
func (a Acceleration) Over(t Seconds) Velocity {
	return Velocity(float64(a) * float64(t))
}

// Km returns the distance in kilometres.
func (m Meters) Km() float64 {
	return float64(m) / metersPerKm
}

// Over returns the fuel mass burned at rate r during t.
func (r BurnRate) Over(t Seconds) Kilograms {
	return Kilograms(float64(r) * float64(t))
}

// IsNumber reports whether x is a finite value.
func IsNumber(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
