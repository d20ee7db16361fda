package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/systemstart/powermake/pkg/api"
	"github.com/systemstart/powermake/pkg/logging"
	"github.com/systemstart/powermake/pkg/pipeline"
)

var (
	tmpDir      string
	verbose     bool
	loggingType string
	logLevel    string
)

var runCmd = &cobra.Command{
	Use:   "run <pipeline.yaml>",
	Short: "Run a pipeline from a YAML document",
	Long: `Run loads the pipeline document, validates every node up front, and
executes the nodes in declaration order. The first failing node halts the
run; intermediate artifacts stay in the temp directory for inspection.

Example:
  powermake run build.yaml
  powermake run build.yaml -t /tmp/build -v
`,
	Args: cobra.ExactArgs(1),
	Run:  runPipeline,
}

func init() {
	runCmd.Flags().StringVarP(&tmpDir, "tmp-dir", "t", "", "temp directory for intermediate files (default: .tmp/ beside the pipeline file)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose progress output (implies --log-level debug)")
	runCmd.Flags().StringVar(&loggingType, "logging-type", logging.Tint, "logging type: json, text or tint")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level: debug, info, warn, error")

	// Bare "powermake pipeline.yaml" behaves like "powermake run". This
	// wiring must follow the flag registration above.
	rootCmd.Args = runCmd.Args
	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

// effectiveLogLevel resolves --verbose against --log-level: verbose detail
// is emitted at debug, so the flag forces the debug level.
func effectiveLogLevel(verbose bool, level string) string {
	if verbose {
		return "debug"
	}
	return level
}

func runPipeline(_ *cobra.Command, args []string) {
	if err := logging.Initialize(loggingType, effectiveLogLevel(verbose, logLevel)); err != nil {
		slog.Error("failed to initialize logging", "error", err)
		os.Exit(exitLoggingError)
	}

	includeEnv()

	p, err := api.LoadPipeline(args[0])
	if err != nil {
		slog.Error("failed to load pipeline", "file", args[0], "error", err)
		os.Exit(exitLoadPipelineFailed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = pipeline.Run(ctx, p, pipeline.Options{
		TmpDir:  tmpDir,
		Verbose: verbose,
	})
	if err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(exitRunFailed)
	}
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}
