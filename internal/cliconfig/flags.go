package cliconfig

import "github.com/spf13/pflag"

// Flag names. Config file and environment values for a key are skipped when
// the matching flag was set on the command line.
const (
	FlagConfig       = "config"
	FlagEnvFile      = "env-file"
	FlagVelocity     = "velocity"
	FlagAcceleration = "acceleration"
	FlagTime         = "time"
	FlagDistance     = "distance"
	FlagFuel         = "fuel"
	FlagFuelBurnRate = "burn-rate"
	FlagOutput       = "output"
	FlagLogLevel     = "log-level"
)

// BindFlags registers the parameter flags on fs, using cfg's current values as defaults.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.Float64Var(&cfg.VelocityKmh, FlagVelocity, cfg.VelocityKmh, "initial velocity (km/h)")
	fs.Float64Var(&cfg.Acceleration, FlagAcceleration, cfg.Acceleration, "constant acceleration (m/s², may be negative)")
	fs.Float64Var(&cfg.Time, FlagTime, cfg.Time, "elapsed time (s)")
	fs.Float64Var(&cfg.Distance, FlagDistance, cfg.Distance, "initial distance (m)")
	fs.Float64Var(&cfg.Fuel, FlagFuel, cfg.Fuel, "initial fuel mass (kg)")
	fs.Float64Var(&cfg.FuelBurnRate, FlagFuelBurnRate, cfg.FuelBurnRate, "fuel burn rate (kg/s)")
	fs.StringVarP(&cfg.Output, FlagOutput, "o", cfg.Output, "output format: text, json or toml")
	fs.StringVar(&cfg.LogLevel, FlagLogLevel, cfg.LogLevel, "log level: debug, info, warn, error")
}

// ChangedFlags returns the names of flags set explicitly on fs.
func ChangedFlags(fs *pflag.FlagSet) map[string]bool {
	changed := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	return changed
}
