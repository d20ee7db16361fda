package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// Exit codes beyond the cobra/usage default of 1.
const (
	_ = iota
	exitUsageError
	exitDotenvError
	exitLoggingError
	exitLoadPipelineFailed
	exitRunFailed
)

var rootCmd = &cobra.Command{
	Use:   "powermake",
	Short: "powermake runs makefile-style YAML pipelines",
	Long: `powermake reads an ordered list of declarative nodes from a YAML
document and executes them sequentially, passing intermediate results
between nodes through temporary files.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and exit",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUsageError)
	}
}
