package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/geange/wordrep"
	"github.com/geange/wordrep/internal/config"
	"github.com/geange/wordrep/internal/logging"
	"github.com/geange/wordrep/internal/metrics"
)

func newDecideCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "decide <matrix-file>",
		Short: "Decide whether the graph of an adjacency matrix is word-representable",
		Long: `Read an adjacency matrix, one row per line with cells 0/1 or true/false,
and decide whether its graph is word-representable. Use "-" to read stdin.

Settings come from built-in defaults, then --config, then WORDREP_* environment
variables, then flags.

Examples:
  wordrep decide graph.txt
  wordrep decide -v --strategy fast graph.txt
  wordrep decide --config wordrep.yaml --metrics run.prom graph.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runDecide,
	}

	flags := c.Flags()
	flags.String("config", "", "YAML config file")
	flags.String("strategy", "exact", "combination strategy: exact or fast")
	flags.Uint64("seed", 0, "seed for the fast strategy's combination order")
	flags.Bool("minimize", false, "minimize the accumulator after every exact step")
	flags.String("export", "", "write the final automaton to this file")
	flags.String("metrics", "", "write Prometheus metrics of the run to this file")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	return c
}

// loadConfig layers the flags the user set over config.Load.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Seed = &seed
	}
	if flags.Changed("minimize") {
		cfg.Minimize, _ = flags.GetBool("minimize")
	}
	if flags.Changed("export") {
		cfg.ExportPath, _ = flags.GetString("export")
	}
	if flags.Changed("metrics") {
		cfg.MetricsPath, _ = flags.GetString("metrics")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	return cfg, cfg.Validate()
}

func readMatrix(cmd *cobra.Command, path string) (wordrep.Matrix, error) {
	if path == "-" {
		return wordrep.ParseMatrix(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return wordrep.ParseMatrix(f)
}

// progress prints the per-step line of --verbose.
type progress struct {
	w io.Writer
}

func (p progress) ObserveStep(step wordrep.Step) {
	fmt.Fprintf(p.w, "Number of combined automatas: %d - Number of States: %d\n", step.Combined, step.States)
}

func (p progress) ObserveDecision(wordrep.Strategy, bool, time.Duration) {}

func runDecide(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	strategy, err := wordrep.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	m, err := readMatrix(cmd, args[0])
	if err != nil {
		return fmt.Errorf("read matrix: %w", err)
	}
	logger.Debug("matrix loaded", "path", args[0], "nodes", m.Size(), "edges", m.NumEdges())

	out := cmd.OutOrStdout()
	var observers []wordrep.Observer
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		observers = append(observers, progress{w: out})
	}
	var recorder *metrics.Recorder
	if cfg.MetricsPath != "" {
		recorder = metrics.NewRecorder()
		observers = append(observers, recorder)
	}

	opts := []wordrep.Option{
		wordrep.WithLogger(logger),
		wordrep.WithMinimize(cfg.Minimize),
		wordrep.WithObserver(wordrep.Observers(observers...)),
	}
	if cfg.Seed != nil {
		opts = append(opts, wordrep.WithSeed(*cfg.Seed))
	}

	result, err := wordrep.Decide(m, strategy, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "representable: %t\n", result.Representable)
	fmt.Fprintf(out, "strategy: %s, steps: %d, max states: %d\n", result.Strategy, result.Steps, result.MaxStates)
	fmt.Fprintf(out, "elapsed: %s\n", result.Elapsed)

	if cfg.ExportPath != "" {
		exportResult(logger, result, cfg.ExportPath)
	}
	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.MetricsPath); err != nil {
			logger.Error("write metrics", "path", cfg.MetricsPath, "error", err)
		}
	}
	return nil
}

// exportResult only logs failures; the decision has already been made.
func exportResult(logger *slog.Logger, result *wordrep.Result, path string) {
	if result.Final == nil && result.Residual == nil {
		logger.Warn("no automaton to export", "error", wordrep.ErrNothingToExport)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		logger.Error("export automaton", "path", path, "error", err)
		return
	}
	err = errors.Join(result.Export(f, nil), f.Close())
	if err != nil {
		logger.Error("export automaton", "path", path, "error", err)
		return
	}
	logger.Info("automaton exported", "path", path)
}
