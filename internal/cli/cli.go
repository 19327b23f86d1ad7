package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/temples/internal/app"
	"github.com/vk/temples/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("temples", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Temples - wires file-backed data artifacts into runnable pipelines.

Usage:
  temples [options] PIPELINE

Arguments:
  PIPELINE
    Name of a registered pipeline. Use -list to see them.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("config-root", os.Getenv(config.RootEnv),
		fmt.Sprintf("Configuration root directory. Defaults to $%s.", config.RootEnv))
	formatFlag := flagSet.String("config-format", "toml", "Configuration file format. Options: 'toml', 'json' or 'hcl'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	listFlag := flagSet.Bool("list", false, "List the registered pipelines and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	pipeline := flagSet.Arg(0)
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "only one pipeline can be run at a time"}
	}
	if pipeline == "" && !*listFlag {
		slog.Debug("No pipeline provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ConfigRoot:   *rootFlag,
		ConfigFormat: strings.ToLower(*formatFlag),
		Pipeline:     pipeline,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		List:         *listFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
