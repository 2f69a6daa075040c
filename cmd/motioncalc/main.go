package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/motioncalc/internal/cliconfig"
	"github.com/bft-labs/motioncalc/internal/domain"
	"github.com/bft-labs/motioncalc/internal/motion"
	"github.com/bft-labs/motioncalc/internal/report"
	logAdapter "github.com/bft-labs/motioncalc/pkg/log"
)

var longHelp = strings.TrimSpace(`
Compute the outcome of one straight-line motion segment under constant
acceleration: the new velocity, the distance reached and the fuel left.

With no arguments the built-in segment is used:
  10000 km/h, 3 m/s², 3600 s, 0 m, 5000 kg of fuel burning at 0.5 kg/s.

Any parameter can be overridden from a TOML config file, a .env file,
MOTIONCALC_* environment variables or flags (in increasing precedence).

The distance reached is s0 + v0·t. It does not include the ½·a·t² term;
structured output reports that term as omitted_distance_km.
`)

var exampleUsage = strings.TrimSpace(`
  motioncalc
  motioncalc --time 1800 --burn-rate 1.2
  motioncalc --config ./segment.toml -o json
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	envFile := cliconfig.DefaultEnvFile

	root := &cobra.Command{
		Use:           "motioncalc",
		Short:         "Compute velocity, distance and remaining fuel for a motion segment",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cliconfig.ChangedFlags(cmd.Flags())

			// Config file first (default $HOME/.motioncalc/config.toml); an
			// explicit --config must exist.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			} else if !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("config file %s not found", cfgFile)
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// Environment (MOTIONCALC_*, .env included) overrides the file
			// but not flags.
			if err := cliconfig.LoadDotEnv(envFile); err != nil {
				return err
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.Logger(stderr, cfg.LogLevel)
			log.Debug().Interface("config", cfg).Msg("configuration")

			calc := motion.NewCalculator(
				motion.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
			)
			res, err := calc.Compute(cmd.Context(), cfg.State())
			if errors.Is(err, domain.ErrInvalidParameter) {
				fmt.Fprintf(stderr, "Error: %s\n", err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("compute: %w", err)
			}

			return report.Render(stdout, cfg.Format(), res)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, cliconfig.FlagConfig, "", "path to config file (default: $HOME/.motioncalc/config.toml)")
	root.Flags().StringVar(&envFile, cliconfig.FlagEnvFile, envFile, "dotenv file to load before reading MOTIONCALC_* variables")
	cliconfig.BindFlags(root.Flags(), &cfg)

	return root
}

func main() {
	root := newRootCommand(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		log := cliconfig.Logger(os.Stderr, cliconfig.DefaultLogLevel)
		log.Error().Err(err).Msg("motioncalc")
		os.Exit(1)
	}
}
