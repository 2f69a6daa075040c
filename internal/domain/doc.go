// Package domain contains the value types used by motioncalc.
//
// This package has no dependencies on infrastructure concerns (configuration,
// logging, output formatting) and contains only quantities, records and
// error values.
//
// # Quantities
//
// Every physical quantity is a distinct float64 type in SI units:
//
//   - [Velocity]: metres per second
//   - [Acceleration]: metres per second squared
//   - [Seconds]: elapsed time
//   - [Meters]: position along the line of motion
//   - [Kilograms]: fuel mass
//   - [BurnRate]: fuel mass per second
//
// Products of quantities are exposed only as typed methods such as
// [Acceleration.Over], so a velocity passed where an acceleration is
// expected does not compile.
//
// # Records
//
//   - [State]: the six inputs of a single motion segment
//   - [Result]: the derived velocity, distance and remaining fuel
package domain
