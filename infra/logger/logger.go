package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/plugkit/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// New returns a Logger for the given component with no level filtering.
func New(component string) Logger {
	return NewWithLevel(component, "")
}

// NewWithLevel returns a Logger for the given component that drops events
// below level ("debug", "info", "warn" or "error"). An empty level disables
// filtering. The output format is chosen from the APP_ENV environment
// variable: "dev" selects the console writer, anything else emits JSON.
func NewWithLevel(component, level string) Logger {
	var out io.Writer = os.Stdout
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return newLogger(component, level, out)
}

func newLogger(component, level string, out io.Writer) Logger {
	z := zerolog.New(out).With().Timestamp().Str("component", component).Logger()
	if level != "" {
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			z = z.Level(lvl)
		}
	}
	return &zerologLogger{log: z}
}

type zerologLogger struct {
	log zerolog.Logger
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
