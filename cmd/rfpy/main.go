package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/meqash/RfPy/internal/options"
	"github.com/meqash/RfPy/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:    "rfpy",
		Usage:   "Teleseismic receiver-function processing tools",
		Version: version.String(),
		Commands: []*cli.Command{
			calcCommand(),
			recalcCommand(),
			hkCommand(),
			harmonicsCommand(),
			ccpCommand(),
			plotCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(options.ExitCode(err))
	}
}

// setupLogging routes resolver warnings and progress to stdout; --verbose
// raises the level to debug.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func calcCommand() *cli.Command {
	return &cli.Command{
		Name: "calc",
		Usage: "Download three-component seismograms for individual events " +
			"and calculate teleseismic receiver functions",
		ArgsUsage: "<station database>",
		Flags:     options.CalcFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("verbose"))
			cfg, indb, err := options.ResolveCalc(cmd)
			if err != nil {
				return err
			}
			slog.Debug("configuration resolved", "command", "calc", "database", indb,
				"phase", cfg.Phase, "distance", cfg.Distance, "method", cfg.Method)
			return nil
		},
	}
}

func recalcCommand() *cli.Command {
	return &cli.Command{
		Name:      "recalc",
		Usage:     "Re-calculate receiver functions from previously downloaded data",
		ArgsUsage: "<station database>",
		Flags:     options.RecalcFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("verbose"))
			cfg, indb, err := options.ResolveRecalc(cmd)
			if err != nil {
				return err
			}
			slog.Debug("configuration resolved", "command", "recalc", "database", indb,
				"phases", cfg.Phases, "method", cfg.Method)
			return nil
		},
	}
}

func hkCommand() *cli.Command {
	return &cli.Command{
		Name:      "hk",
		Usage:     "Process receiver-function data for H-k stacking",
		ArgsUsage: "<station database>",
		Flags:     options.HKFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("verbose"))
			cfg, indb, err := options.ResolveHK(cmd)
			if err != nil {
				return err
			}
			slog.Debug("configuration resolved", "command", "hk", "database", indb,
				"hbound", cfg.HBound, "kbound", cfg.KBound, "stack", cfg.Stack)
			return nil
		},
	}
}

func harmonicsCommand() *cli.Command {
	return &cli.Command{
		Name:      "harmonics",
		Usage:     "Process receiver-function data for harmonic decomposition",
		ArgsUsage: "<station database>",
		Flags:     options.HarmonicsFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("verbose"))
			cfg, indb, err := options.ResolveHarmonics(cmd)
			if err != nil {
				return err
			}
			slog.Debug("configuration resolved", "command", "harmonics", "database", indb,
				"azim", cfg.Azim, "find_azim", cfg.FindAzim)
			return nil
		},
	}
}

func ccpCommand() *cli.Command {
	return &cli.Command{
		Name:      "ccp",
		Usage:     "Process receiver-function data for common-conversion-point imaging",
		ArgsUsage: "<station database>",
		Flags:     options.CCPFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("verbose"))
			cfg, indb, err := options.ResolveCCP(cmd)
			if err != nil {
				return err
			}
			slog.Debug("configuration resolved", "command", "ccp", "database", indb,
				"linear", cfg.Linear, "phase_weighted", cfg.PhaseWeighted)
			return nil
		},
	}
}

func plotCommand() *cli.Command {
	return &cli.Command{
		Name:      "plot",
		Usage:     "Plot receiver-function data",
		ArgsUsage: "<station database>",
		Flags:     options.PlotFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("verbose"))
			cfg, indb, err := options.ResolvePlot(cmd)
			if err != nil {
				return err
			}
			slog.Debug("configuration resolved", "command", "plot", "database", indb,
				"phases", cfg.Phases, "trange", cfg.TRange)
			return nil
		},
	}
}
