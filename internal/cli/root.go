// Package cli implements the zoo CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rcliao/zoo/internal/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logFile  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "zoo",
	Short: "Feed, name and release animals",
	Long:  "A tiny CLI around the Animal and Cat entities. Messages go to stdout, structured logs to stderr.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level: debug, info, warn, error (default: $ZOO_LOG_LEVEL or info)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also append logs to this file")
}

func getLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	if env := os.Getenv("ZOO_LOG_LEVEL"); env != "" {
		return env
	}
	return "info"
}

func openLogger() (*slog.Logger, func(), error) {
	level, err := logging.ParseLevel(getLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	return logging.Setup(logFile, level)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
