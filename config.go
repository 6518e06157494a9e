package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/naveenkarasu/journey-builder/services/blueprint"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type Config struct {
	ListenAddr      string
	BlueprintAPIURL string
	DatabaseURL     string
	Timeout         time.Duration
	MaxConcurrency  int
	LogLevel        slog.Level
	LogFormat       string
}

// parseConfig reads flags, falling back to the environment and then to defaults.
// The returned bool is true when the program should exit cleanly (e.g. -h).
func parseConfig(args []string, output io.Writer, getenv func(string) string) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("journey-builder", flag.ContinueOnError)
	flagSet.SetOutput(output)

	envOr := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	listenFlag := flagSet.String("listen", envOr("LISTEN_ADDR", ":8080"), "Address the API listens on.")
	upstreamFlag := flagSet.String("blueprint-api", envOr("BLUEPRINT_API_URL", blueprint.DefaultBaseURL), "Base URL of the blueprint graph API.")
	databaseFlag := flagSet.String("database-url", envOr("DATABASE_URL", ""), "Postgres URL for form definitions. Empty uses the forms embedded in each graph.")
	timeoutFlag := flagSet.Duration("timeout", blueprint.DefaultTimeout, "Timeout of a single graph request.")
	concurrencyFlag := flagSet.Int("max-concurrency", blueprint.DefaultMaxConcurrency, "Maximum concurrent graph requests for batch fetches.")
	logLevelFlag := flagSet.String("log-level", envOr("LOG_LEVEL", "info"), "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", envOr("LOG_FORMAT", "text"), "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log level %q", *logLevelFlag)}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid log format %q", *logFormatFlag)}
	}
	if *timeoutFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "timeout must be positive"}
	}
	if *concurrencyFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "max-concurrency must be positive"}
	}

	return &Config{
		ListenAddr:      *listenFlag,
		BlueprintAPIURL: *upstreamFlag,
		DatabaseURL:     *databaseFlag,
		Timeout:         *timeoutFlag,
		MaxConcurrency:  *concurrencyFlag,
		LogLevel:        level,
		LogFormat:       logFormat,
	}, false, nil
}

func newLogger(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
