// Package cli wires the aoc24 cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc24/internal/config"
	"github.com/katalvlaran/aoc24/internal/input"
	"github.com/katalvlaran/aoc24/internal/logging"
	"github.com/katalvlaran/aoc24/internal/solve"
)

// ErrBadDay indicates a day argument that is not a positive integer.
var ErrBadDay = errors.New("cli: day must be a positive integer")

// app is the state shared by subcommands after PersistentPreRunE.
type app struct {
	cfgPath string
	inputs  string
	verbose bool

	cfg *config.Config
	log *zap.Logger
	reg *solve.Registry
}

// Execute runs the root command with ctx and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "aoc24",
		Short:        "Solve Advent of Code 2024 days 1 to 6",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath, "YAML config file (optional)")
	cmd.PersistentFlags().StringVar(&a.inputs, "inputs", "", "directory holding day<N>.txt inputs (overrides config)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(a.runCmd(), a.allCmd(), a.listCmd())
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("inputs") {
		cfg.Inputs = a.inputs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, a.verbose)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.reg = solve.Default(solve.WithWorkers(cfg.Patrol.Workers))
	a.log.Debug("configured",
		zap.String("config", a.cfgPath),
		zap.String("inputs", cfg.Inputs),
		zap.Int("workers", cfg.Patrol.Workers))
	return nil
}

// solveDay runs the solver for day on its input file and prints the answer.
func (a *app) solveDay(cmd *cobra.Command, day int) error {
	s, err := a.reg.Lookup(day)
	if err != nil {
		return err
	}
	f, err := input.Open(a.cfg.Inputs, day)
	if err != nil {
		return err
	}
	defer f.Close()

	log := a.log.With(zap.Int("day", day))
	ans, err := s(cmd.Context(), f, log)
	if err != nil {
		log.Error("solve failed", zap.Error(err))
		return fmt.Errorf("day %d: %w", day, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Day %d\n%s\n", day, ans)
	return nil
}

func parseDay(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadDay, s)
	}
	return n, nil
}

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <day>...",
		Short: "Solve the given days in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days := make([]int, len(args))
			for i, arg := range args {
				d, err := parseDay(arg)
				if err != nil {
					return err
				}
				days[i] = d
			}
			for _, d := range days {
				if err := a.solveDay(cmd, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has both a solver and an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			found, err := input.Discover(a.cfg.Inputs)
			if err != nil {
				return err
			}

			solved := 0
			for _, d := range found {
				if _, err := a.reg.Lookup(d); err != nil {
					a.log.Warn("skipping input without solver", zap.String("file", input.Path(a.cfg.Inputs, d)))
					continue
				}
				if err := a.solveDay(cmd, d); err != nil {
					return err
				}
				solved++
			}
			if solved == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no inputs found in %s\n", a.cfg.Inputs)
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days and whether their input exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, d := range a.reg.Days() {
				status := "missing"
				if input.Exists(a.cfg.Inputs, d) {
					status = "ok"
				}
				fmt.Fprintf(w, "day %d\t%s\t%s\n", d, input.Path(a.cfg.Inputs, d), status)
			}
			return nil
		},
	}
}
