// Package main provides the descent CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/descent/config"
	"github.com/katalvlaran/descent/functions"
	"github.com/katalvlaran/descent/matrix"
	"github.com/katalvlaran/descent/optimize"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "descent",
		Short: "descent - steepest descent with Armijo backtracking",
		Long: `descent minimizes smooth test objectives with steepest descent,
choosing every step with an Armijo backtracking line search.

Settings come from flags, DESCENT_* environment variables and an
optional YAML file, in that order of precedence.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "descent v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the registered objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range functions.Names() {
				e, err := functions.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s start=%s minimizer=%s\n", e.Name, formatSlice(e.Start), formatSlice(e.Minimizer))
			}
			return nil
		},
	})

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Minimize an objective",
		Long:  "Run gradient descent on a registered objective and print the optimal point",
		Args:  cobra.NoArgs,
		RunE:  runDescent,
	}
	runCmd.Flags().String("config", "", "YAML config file")
	runCmd.Flags().String("objective", "expvalley", "Objective name (see 'descent list')")
	runCmd.Flags().String("start", "", "Initial point, comma separated (empty = objective's standard start)")
	runCmd.Flags().Float64("epsilon", optimize.DefaultEpsilon, "Stop once the gradient norm drops below this")
	runCmd.Flags().Int("max-iterations", 0, "Iteration cap (0 = unlimited)")
	runCmd.Flags().Float64("s", optimize.DefaultStep, "Initial Armijo trial step")
	runCmd.Flags().Float64("beta", optimize.DefaultBeta, "Armijo contraction factor")
	runCmd.Flags().Float64("sigma", optimize.DefaultSigma, "Armijo sufficient-decrease factor")
	runCmd.Flags().Int("max-backtracks", 0, "Armijo trial cap (0 = unlimited)")
	runCmd.Flags().String("log-level", optimize.LogSummary.String(), "Progress output: noop, summary, iter, trace")
	rootCmd.AddCommand(runCmd)

	return rootCmd
}

func runDescent(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return err
	}
	if err = cfg.ApplyEnv(); err != nil {
		return err
	}
	if err = applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	entry, err := functions.Lookup(cfg.Objective)
	if err != nil {
		return err
	}
	start := entry.Start
	if len(cfg.Start) > 0 {
		start = cfg.Start
	}

	settings, err := cfg.Settings(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	res, err := optimize.MinimizeContext(cmd.Context(), functions.Problem(entry.Objective), matrix.NewVector(start), settings)
	if res != nil {
		printResult(cmd.OutOrStdout(), entry.Name, res)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted: %w", err)
		}
		return err
	}

	return nil
}

// applyFlags copies explicitly set flags over the file and environment values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("objective") {
		cfg.Objective, _ = flags.GetString("objective")
	}
	if flags.Changed("start") {
		raw, _ := flags.GetString("start")
		v, err := config.ParseVector(raw)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		cfg.Start = v
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon, _ = flags.GetFloat64("epsilon")
	}
	if flags.Changed("max-iterations") {
		cfg.MaxIterations, _ = flags.GetInt("max-iterations")
	}
	if flags.Changed("s") {
		cfg.Armijo.S, _ = flags.GetFloat64("s")
	}
	if flags.Changed("beta") {
		cfg.Armijo.Beta, _ = flags.GetFloat64("beta")
	}
	if flags.Changed("sigma") {
		cfg.Armijo.Sigma, _ = flags.GetFloat64("sigma")
	}
	if flags.Changed("max-backtracks") {
		cfg.Armijo.MaxBacktracks, _ = flags.GetInt("max-backtracks")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}

	return nil
}

func printResult(w io.Writer, name string, res *optimize.Result) {
	fmt.Fprintf(w, "%-15s%s\n", "objective:", name)
	fmt.Fprintf(w, "%-15s%s\n", "x:", formatSlice(res.X.Values()))
	fmt.Fprintf(w, "%-15s%g\n", "f(x):", res.F)
	fmt.Fprintf(w, "%-15s%g\n", "|grad f(x)|:", res.GradNorm)
	fmt.Fprintf(w, "%-15s%d\n", "iterations:", res.NumIter)
	fmt.Fprintf(w, "%-15s%d\n", "line searches:", res.NumLineSearch)
	fmt.Fprintf(w, "%-15s%d\n", "f evals:", res.NumFuncEval)
	fmt.Fprintf(w, "%-15s%d\n", "grad evals:", res.NumGradEval)
}

func formatSlice(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.6g", x)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
