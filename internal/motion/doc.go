// Package motion validates a motion segment and derives its outcome.
//
// The pipeline is Validate, then the three closed-form derivations
// NewVelocity, NewDistance and RemainingFuel. Calculator.Compute runs the
// whole sequence.
//
// Each derivation takes a single input struct with named, unit-typed fields
// rather than positional scalars.
package motion
