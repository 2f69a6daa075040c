package cliconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/motioncalc/internal/domain"
	"github.com/bft-labs/motioncalc/internal/report"
)

// Built-in segment parameters used when nothing overrides them.
const (
	DefaultVelocityKmh  = 10000.0 // km/h
	DefaultAcceleration = 3.0     // m/s²
	DefaultTime         = 3600.0  // s
	DefaultDistance     = 0.0     // m
	DefaultFuel         = 5000.0  // kg
	DefaultFuelBurnRate = 0.5     // kg/s
)

// DefaultLogLevel keeps a plain run limited to the result lines.
const DefaultLogLevel = "warn"

// Config holds CLI configuration for motioncalc.
type Config struct {
	// VelocityKmh is the initial velocity in km/h; it is converted to m/s
	// before validation.
	VelocityKmh  float64
	Acceleration float64
	Time         float64
	Distance     float64
	Fuel         float64
	FuelBurnRate float64

	Output   string
	LogLevel string
}

// DefaultConfig returns a Config with the built-in parameters.
func DefaultConfig() Config {
	return Config{
		VelocityKmh:  DefaultVelocityKmh,
		Acceleration: DefaultAcceleration,
		Time:         DefaultTime,
		Distance:     DefaultDistance,
		Fuel:         DefaultFuel,
		FuelBurnRate: DefaultFuelBurnRate,
		Output:       string(report.FormatText),
		LogLevel:     DefaultLogLevel,
	}
}

// Validate checks the CLI settings and normalizes them.
// Segment parameters are not checked here; motion.Validate owns those rules.
func (c *Config) Validate() error {
	if c.Output == "" {
		c.Output = string(report.FormatText)
	}
	f, err := report.ParseFormat(c.Output)
	if err != nil {
		return err
	}
	c.Output = string(f)

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return nil
}

// Format returns the parsed output format. Call Validate first.
func (c Config) Format() report.Format {
	return report.Format(c.Output)
}

// State converts the configured parameters to SI units.
func (c Config) State() domain.State {
	return domain.State{
		Velocity:     domain.VelocityFromKmh(c.VelocityKmh),
		Acceleration: domain.Acceleration(c.Acceleration),
		Time:         domain.Seconds(c.Time),
		Distance:     domain.Meters(c.Distance),
		Fuel:         domain.Kilograms(c.Fuel),
		FuelBurnRate: domain.BurnRate(c.FuelBurnRate),
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value from a pointer if not nil and flag not changed.
// Zero and negative values are applied as given.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}
