package cliconfig

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Environment variables read by ApplyEnvConfig.
const (
	EnvVelocity     = "MOTIONCALC_VELOCITY_KMH"
	EnvAcceleration = "MOTIONCALC_ACCELERATION"
	EnvTime         = "MOTIONCALC_TIME"
	EnvDistance     = "MOTIONCALC_DISTANCE"
	EnvFuel         = "MOTIONCALC_FUEL"
	EnvFuelBurnRate = "MOTIONCALC_FUEL_BURN_RATE"
	EnvOutput       = "MOTIONCALC_OUTPUT"
	EnvLogLevel     = "MOTIONCALC_LOG_LEVEL"
)

// LoadDotEnv loads variables from a dotenv file into the process environment.
// Variables already set in the environment are not overwritten.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" || !FileExists(path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnvConfig applies configuration from environment variables (MOTIONCALC_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	floats := []struct {
		flag string
		env  string
		dst  *float64
	}{
		{FlagVelocity, EnvVelocity, &cfg.VelocityKmh},
		{FlagAcceleration, EnvAcceleration, &cfg.Acceleration},
		{FlagTime, EnvTime, &cfg.Time},
		{FlagDistance, EnvDistance, &cfg.Distance},
		{FlagFuel, EnvFuel, &cfg.Fuel},
		{FlagFuelBurnRate, EnvFuelBurnRate, &cfg.FuelBurnRate},
	}
	for _, f := range floats {
		if err := s.setFloatFromString(f.flag, os.Getenv(f.env), f.dst); err != nil {
			return fmt.Errorf("%s: %w", f.env, err)
		}
	}

	s.setString(FlagOutput, os.Getenv(EnvOutput), &cfg.Output)
	s.setString(FlagLogLevel, os.Getenv(EnvLogLevel), &cfg.LogLevel)

	return nil
}
