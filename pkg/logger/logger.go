package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Pretty bool      // Enable pretty console output
	Out    io.Writer // defaults to stderr
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stderr
	if cfg.Out != nil {
		output = cfg.Out
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// SetGlobalLogger sets the package-level logger
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}

// EngineLogger adapts a zerolog.Logger to the printf-style logger the
// projection engine accepts.
type EngineLogger struct {
	L zerolog.Logger
}

// NewEngineLogger tags every engine message with component=engine.
func NewEngineLogger(l zerolog.Logger) EngineLogger {
	return EngineLogger{L: l.With().Str("component", "engine").Logger()}
}

func (e EngineLogger) Debugf(format string, args ...any) { e.L.Debug().Msgf(format, args...) }
func (e EngineLogger) Warnf(format string, args ...any)  { e.L.Warn().Msgf(format, args...) }
