package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Handler is the [slog.Handler] type produced by this package.
type Handler = slog.Handler

const (
	// LevelDebug is the debug severity level.
	LevelDebug = slog.LevelDebug
	// LevelInfo is the info severity level.
	LevelInfo = slog.LevelInfo
	// LevelWarn is the warn severity level.
	LevelWarn = slog.LevelWarn
	// LevelError is the error severity level.
	LevelError = slog.LevelError
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatText outputs logs in human-readable key=value text.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings creates a [Handler] by parsing level and format
// strings, as produced by CLI flags.
func NewHandlerFromStrings(w io.Writer, level, format string) (Handler, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	fmtVal, err := GetFormat(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, fmtVal), nil
}

// NewHandler creates a [Handler] with the specified level and format.
func NewHandler(w io.Writer, lvl slog.Level, format Format) Handler {
	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
		})

	case FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     lvl,
		})
	}

	return nil
}

// GetLevel parses a log level string and returns the corresponding
// [slog.Level].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return 0, ErrUnknownLogLevel
}

// GetFormat parses a log format string and returns the corresponding
// [Format].
func GetFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatJSON, FormatText}, f) {
		return f, nil
	}

	return "", ErrUnknownLogFormat
}

// GetAllLevelStrings returns the recognized level strings, for use in flag
// help text and shell completion.
func GetAllLevelStrings() []string {
	return []string{"debug", "info", "warn", "error"}
}

// GetAllFormatStrings returns the recognized format strings, for use in flag
// help text and shell completion.
func GetAllFormatStrings() []string {
	return []string{"text", "json"}
}
