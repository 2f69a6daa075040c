package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML decoding. Numeric fields are pointers so
// that an explicit zero is distinguishable from an absent key.
type FileConfig struct {
	VelocityKmh  *float64 `toml:"velocity_kmh"`
	Acceleration *float64 `toml:"acceleration"`
	Time         *float64 `toml:"time"`
	Distance     *float64 `toml:"distance"`
	Fuel         *float64 `toml:"fuel"`
	FuelBurnRate *float64 `toml:"fuel_burn_rate"`
	Output       string   `toml:"output"`
	LogLevel     string   `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.motioncalc/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".motioncalc", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setFloat(FlagVelocity, fc.VelocityKmh, &cfg.VelocityKmh)
	s.setFloat(FlagAcceleration, fc.Acceleration, &cfg.Acceleration)
	s.setFloat(FlagTime, fc.Time, &cfg.Time)
	s.setFloat(FlagDistance, fc.Distance, &cfg.Distance)
	s.setFloat(FlagFuel, fc.Fuel, &cfg.Fuel)
	s.setFloat(FlagFuelBurnRate, fc.FuelBurnRate, &cfg.FuelBurnRate)

	s.setString(FlagOutput, fc.Output, &cfg.Output)
	s.setString(FlagLogLevel, fc.LogLevel, &cfg.LogLevel)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
