package cliconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/bft-labs/motioncalc/internal/domain"
	"github.com/bft-labs/motioncalc/internal/report"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.VelocityKmh != 10000 {
		t.Errorf("VelocityKmh = %v, want 10000", cfg.VelocityKmh)
	}
	if cfg.Acceleration != 3 {
		t.Errorf("Acceleration = %v, want 3", cfg.Acceleration)
	}
	if cfg.Time != 3600 {
		t.Errorf("Time = %v, want 3600", cfg.Time)
	}
	if cfg.Distance != 0 {
		t.Errorf("Distance = %v, want 0", cfg.Distance)
	}
	if cfg.Fuel != 5000 {
		t.Errorf("Fuel = %v, want 5000", cfg.Fuel)
	}
	if cfg.FuelBurnRate != 0.5 {
		t.Errorf("FuelBurnRate = %v, want 0.5", cfg.FuelBurnRate)
	}
	if cfg.Output != "text" {
		t.Errorf("Output = %v, want text", cfg.Output)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name         string
		config       Config
		wantErr      bool
		wantOutput   string
		wantLogLevel string
	}{
		{
			name:         "defaults",
			config:       DefaultConfig(),
			wantOutput:   "text",
			wantLogLevel: "warn",
		},
		{
			name:         "empty settings fall back to defaults",
			config:       Config{},
			wantOutput:   "text",
			wantLogLevel: "warn",
		},
		{
			name:         "output and level are normalized",
			config:       Config{Output: "JSON", LogLevel: "DEBUG"},
			wantOutput:   "json",
			wantLogLevel: "debug",
		},
		{
			name:    "unknown output",
			config:  Config{Output: "yaml"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{LogLevel: "loud"},
			wantErr: true,
		},
		{
			name: "invalid segment parameters are left to the validator",
			config: Config{
				VelocityKmh: -1,
				Fuel:        -1,
			},
			wantOutput:   "text",
			wantLogLevel: "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if tt.config.Output != tt.wantOutput {
				t.Errorf("Output = %v, want %v", tt.config.Output, tt.wantOutput)
			}
			if tt.config.LogLevel != tt.wantLogLevel {
				t.Errorf("LogLevel = %v, want %v", tt.config.LogLevel, tt.wantLogLevel)
			}
		})
	}
}

func TestConfig_Format(t *testing.T) {
	cfg := Config{Output: "toml"}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Format() != report.FormatTOML {
		t.Errorf("Format() = %v, want toml", cfg.Format())
	}
}

func TestConfig_State(t *testing.T) {
	cfg := Config{
		VelocityKmh:  36,
		Acceleration: -2,
		Time:         10,
		Distance:     5,
		Fuel:         50,
		FuelBurnRate: 1.5,
	}

	got := cfg.State()
	want := domain.State{
		Velocity:     10,
		Acceleration: -2,
		Time:         10,
		Distance:     5,
		Fuel:         50,
		FuelBurnRate: 1.5,
	}
	if got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	if err := fs.Parse([]string{"--velocity", "720", "--acceleration=-1.5", "-o", "json"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.VelocityKmh != 720 {
		t.Errorf("VelocityKmh = %v, want 720", cfg.VelocityKmh)
	}
	if cfg.Acceleration != -1.5 {
		t.Errorf("Acceleration = %v, want -1.5", cfg.Acceleration)
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %v, want json", cfg.Output)
	}
	if cfg.Fuel != DefaultFuel {
		t.Errorf("Fuel = %v, want default %v", cfg.Fuel, DefaultFuel)
	}

	changed := ChangedFlags(fs)
	for _, name := range []string{FlagVelocity, FlagAcceleration, FlagOutput} {
		if !changed[name] {
			t.Errorf("expected %q in changed flags", name)
		}
	}
	if changed[FlagFuel] {
		t.Errorf("did not expect %q in changed flags", FlagFuel)
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer

	log := Logger(&buf, "")
	log.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered at default level, got %q", buf.String())
	}
	log.Warn().Msg("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("expected warn output, got %q", buf.String())
	}

	buf.Reset()
	debugLog := Logger(&buf, "debug")
	debugLog.Debug().Msg("details")
	if !strings.Contains(buf.String(), "details") {
		t.Errorf("expected debug output, got %q", buf.String())
	}
}
