package motion

import "github.com/bft-labs/motioncalc/internal/domain"

// VelocityInput holds the arguments of NewVelocity.
type VelocityInput struct {
	Initial      domain.Velocity
	Acceleration domain.Acceleration
	Elapsed      domain.Seconds
}

// DistanceInput holds the arguments of NewDistance.
type DistanceInput struct {
	Initial  domain.Meters
	Velocity domain.Velocity
	Elapsed  domain.Seconds
}

// FuelInput holds the arguments of RemainingFuel.
type FuelInput struct {
	Initial  domain.Kilograms
	BurnRate domain.BurnRate
	Elapsed  domain.Seconds
}

// NewVelocity returns the velocity after accelerating for in.Elapsed.
func NewVelocity(in VelocityInput) domain.Velocity {
	return in.Initial + in.Acceleration.Over(in.Elapsed)
}

// NewDistance returns the position after moving at in.Velocity for in.Elapsed.
//
// This is the constant-velocity approximation s = s0 + v0·t. It ignores
// acceleration, so it is exact only when acceleration is zero. The missing
// term is available from OmittedDistance.
func NewDistance(in DistanceInput) domain.Meters {
	return in.Initial + in.Velocity.Over(in.Elapsed)
}

// OmittedDistance returns ½·a·t², the term NewDistance leaves out.
func OmittedDistance(a domain.Acceleration, t domain.Seconds) domain.Meters {
	return a.Over(t).Over(t) / 2
}

// RemainingFuel returns the fuel left after burning at in.BurnRate for in.Elapsed.
// The result is negative if the burn exceeds in.Initial; Validate rejects such states.
func RemainingFuel(in FuelInput) domain.Kilograms {
	return in.Initial - in.BurnRate.Over(in.Elapsed)
}
