package logging

import (
	"io"
	"log/slog"
	"strings"
)

const envProduction = "production"

// SetupLogger installs the default logger: JSON with source locations in
// production, text everywhere else. Unknown levels fall back to info.
func SetupLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	isProduction := appEnv == envProduction
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(logLevel),
		AddSource: isProduction,
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if isProduction {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With(slog.String("env", appEnv))
	slog.SetDefault(logger)
	return logger
}

// ParseLevel accepts the slog level names in any case, plus "warning".
func ParseLevel(s string) slog.Level {
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
