package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFormat  string
	flagJSON    bool
	flagVerbose bool

	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "importmap",
	Short: "Validate import maps and resolve module specifiers",
	Long: `Validate import-map documents and resolve module specifiers against them.

Documents are read from a file or stdin, in JSON (the native format) or
YAML. Validation reports every structural, URL, Unicode-security, and
integrity problem in one pass; resolution applies scoped and global
mappings with longest-key precedence.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: false,
			Prefix:          "importmap",
		})
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "auto",
		"input format: json, yaml, or auto (detect by file extension)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false,
		"emit machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resolveCmd)
}

// Execute runs the root command. Exit code 1 indicates an invalid map,
// an unresolved specifier, or an I/O problem.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
