package motion

import (
	"context"

	"github.com/bft-labs/motioncalc/internal/domain"
	"github.com/bft-labs/motioncalc/pkg/log"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger used for debug output.
// If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// Calculator runs the validate-then-derive pipeline for a motion segment.
// It holds no state between calls.
type Calculator struct {
	logger log.Logger
}

// NewCalculator creates a Calculator.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compute validates s and derives the resulting velocity, distance and fuel.
// On a validation failure it returns a zero Result and the
// *domain.ValidationError; no derivation is run.
func (c *Calculator) Compute(ctx context.Context, s domain.State) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	c.logger.Debug("validating motion state", log.Any("state", s))
	if err := Validate(s); err != nil {
		c.logger.Debug("motion state rejected", log.Err(err))
		return domain.Result{}, err
	}

	res := domain.Result{
		Velocity: NewVelocity(VelocityInput{
			Initial:      s.Velocity,
			Acceleration: s.Acceleration,
			Elapsed:      s.Time,
		}),
		Distance: NewDistance(DistanceInput{
			Initial:  s.Distance,
			Velocity: s.Velocity,
			Elapsed:  s.Time,
		}),
		RemainingFuel: RemainingFuel(FuelInput{
			Initial:  s.Fuel,
			BurnRate: s.FuelBurnRate,
			Elapsed:  s.Time,
		}),
		OmittedDistance: OmittedDistance(s.Acceleration, s.Time),
	}

	c.logger.Debug("motion computed",
		log.Float64("velocity_ms", float64(res.Velocity)),
		log.Float64("distance_m", float64(res.Distance)),
		log.Float64("remaining_fuel_kg", float64(res.RemainingFuel)),
		log.Float64("omitted_distance_m", float64(res.OmittedDistance)),
	)
	return res, nil
}
