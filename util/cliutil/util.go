package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bluesky-social/seedtree/bst"
)

type LogOptions struct {
	// path to write to; empty means stderr, "-" means stdout
	LogPath string

	// text|json
	LogFormat string

	// info|debug|warn|error
	LogLevel string
}

// Configures the default slog logger. Empty options fall back to BSTLOG_* and then GOLOG_* environment variables.
func SetupSlog(options LogOptions) (*slog.Logger, io.Closer, error) {
	var hopts slog.HandlerOptions
	if options.LogLevel == "" {
		options.LogLevel = firstenv("BSTLOG_LOG_LEVEL", "GOLOG_LOG_LEVEL")
	}
	level, err := ParseLevel(options.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	hopts.Level = level

	if options.LogFormat == "" {
		options.LogFormat = firstenv("BSTLOG_LOG_FMT", "GOLOG_LOG_FMT")
	}
	if options.LogFormat == "" {
		options.LogFormat = "text"
	}
	options.LogFormat = strings.ToLower(options.LogFormat)

	if options.LogPath == "" {
		options.LogPath = firstenv("BSTLOG_FILE", "GOLOG_FILE")
	}
	var out io.Writer
	var closer io.Closer = nopCloser{}
	switch options.LogPath {
	case "":
		out = os.Stderr
	case "-":
		out = os.Stdout
	default:
		f, err := os.Create(options.LogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", options.LogPath, err)
		}
		out = f
		closer = f
	}

	handler, err := NewHandler(out, options.LogFormat, &hopts)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer, nil
}

func NewHandler(out io.Writer, format string, hopts *slog.HandlerOptions) (slog.Handler, error) {
	switch format {
	case "text":
		return slog.NewTextHandler(out, hopts), nil
	case "json":
		return slog.NewJSONHandler(out, hopts), nil
	default:
		return nil, fmt.Errorf("unknown log format: %#v", format)
	}
}

// Empty string is info level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %#v", s)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func firstenv(env_var_names ...string) string {
	for _, env_var_name := range env_var_names {
		val := os.Getenv(env_var_name)
		if val != "" {
			return val
		}
	}
	return ""
}

// Parses integer keys from command-line arguments. Each argument may itself be a comma-separated list.
func ParseKeys(args []string) ([]int, error) {
	keys := []int{}
	for _, field := range splitFields(args) {
		k, err := bst.ParseKey(field)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Parses operations like "+9" and "-3" from command-line arguments, with the same splitting as ParseKeys.
func ParseOperations(args []string) ([]bst.Operation[int], error) {
	ops := []bst.Operation[int]{}
	for _, field := range splitFields(args) {
		op, err := bst.ParseOperation(field)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func splitFields(args []string) []string {
	var out []string
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			f = strings.TrimSpace(f)
			if f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}
