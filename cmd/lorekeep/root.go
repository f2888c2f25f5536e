package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var dataDir string
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "lorekeep",
		Short:         "File-backed lore wiki server and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(parseLevel(logLevel))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "./data", "Data directory holding the collection files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCommand(&dataDir))
	rootCmd.AddCommand(newSeedCommand(&dataDir))
	rootCmd.AddCommand(newCheckCommand(&dataDir))
	rootCmd.AddCommand(newListCommand(&dataDir))
	rootCmd.AddCommand(newSchemaCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setupLogging installs a tinted slog handler on stderr. Colors are disabled
// when stderr is not a terminal.
func setupLogging(level slog.Level) {
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
