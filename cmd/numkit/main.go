package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/numkit/internal/config"
	"github.com/san-kum/numkit/internal/registry"
)

var (
	dataDir    string
	configFile string
	logLevel   string
	// Numeric settings
	precision  int
	step       string
	round      bool
	iterations int
	// Root finding
	preset    string
	save      bool
	showTrace bool
	// Plotting
	from   float64
	to     float64
	points int
	// Export target, "-" for stdout
	outPath string

	cfg   *config.Config
	funcs = registry.NewRegistry()
)

// main registers the numkit commands and executes the root command, exiting
// with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "numkit",
		Short:             "arbitrary-precision derivatives, Newton roots and hyperspherical coordinates",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	derivCmd := &cobra.Command{
		Use:   "deriv [function] [x]",
		Short: "forward-difference derivative at a point",
		Args:  cobra.ExactArgs(2),
		RunE:  runDerivative,
	}
	addNumericFlags(derivCmd)

	findCmd := &cobra.Command{
		Use:   "root [function] [guess]",
		Short: "fixed-iteration Newton root search",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runRoot,
	}
	addNumericFlags(findCmd)
	findCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "number of Newton updates")
	findCmd.Flags().StringVar(&preset, "preset", "", "use a named root-finding problem")
	findCmd.Flags().BoolVar(&save, "save", false, "persist the iterates under the data directory")
	findCmd.Flags().BoolVar(&showTrace, "trace", false, "print every iterate")

	plotCmd := &cobra.Command{
		Use:   "plot [function]",
		Short: "plot a function and its derivative",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	addNumericFlags(plotCmd)
	plotCmd.Flags().Float64Var(&from, "from", -2, "interval start")
	plotCmd.Flags().Float64Var(&to, "to", 2, "interval end")
	plotCmd.Flags().IntVar(&points, "points", 80, "number of sample points")

	toCartCmd := &cobra.Command{
		Use:   "to-cartesian [r] [angle...]",
		Short: "hyperspherical to cartesian coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runToCartesian,
	}

	toSphCmd := &cobra.Command{
		Use:   "to-spherical [x...]",
		Short: "cartesian to hyperspherical coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runToSpherical,
	}

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "list available functions",
		RunE:  listFunctions,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list root-finding presets",
		RunE:  listPresets,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "inspect saved root searches",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run with its convergence graph",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")

	runsCmd.AddCommand(listCmd, showCmd, exportCmd)

	stepCmd := &cobra.Command{
		Use:   "step [function] [guess]",
		Short: "step through a Newton search interactively",
		Args:  cobra.ExactArgs(2),
		RunE:  runStepper,
	}
	addNumericFlags(stepCmd)
	stepCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "iteration limit")

	rootCmd.AddCommand(derivCmd, findCmd, plotCmd, toCartCmd, toSphCmd,
		functionsCmd, presetsCmd, runsCmd, stepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addNumericFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&precision, "precision", config.DefaultPrecision, "significant digits carried")
	cmd.Flags().StringVar(&step, "step", config.DefaultStep, "forward-difference step size")
	cmd.Flags().BoolVar(&round, "round", true, "round derivatives to the digits the step resolves")
}

// setup resolves the configuration, with flags overriding the config file,
// and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		c = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		c.DataDir = dataDir
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("precision") {
		c.Precision = precision
	}
	if flags.Changed("step") {
		c.Step = step
	}
	if flags.Changed("round") {
		c.Round = round
	}
	if flags.Changed("iterations") {
		c.Iterations = iterations
	}

	if err := c.Validate(); err != nil {
		return err
	}
	lvl, _ := c.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	cfg = c
	return nil
}
