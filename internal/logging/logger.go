// Package logging provides the diagnostic logger shared by the HTTP layer and
// the analyzers. A Logger is built once at startup and passed to whoever needs
// it; there is no package-level instance.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// FilePrefix is the name prefix of every log file written by the service.
const FilePrefix = "fitnessai_"

type Config struct {
	// Dir is where the daily log file is created. Empty disables the file sink.
	Dir string
	// Level is the console level: debug, info, warn or error.
	Level string
	// Format is console or json.
	Format string
	// Production raises the console level to warn regardless of Level.
	Production bool
	// Console defaults to os.Stderr.
	Console io.Writer
	// Now defaults to time.Now and picks the file date.
	Now func() time.Time
}

type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New builds a logger writing to the console and, when cfg.Dir is set, to
// <dir>/fitnessai_YYYY-MM-DD.log at info level and above.
func New(cfg Config) (*Logger, error) {
	if cfg.Console == nil {
		cfg.Console = os.Stderr
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	zerolog.TimeFieldFormat = time.RFC3339

	consoleLevel := ParseLevel(cfg.Level)
	if cfg.Production {
		consoleLevel = zerolog.WarnLevel
	}

	var console io.Writer = cfg.Console
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{Out: cfg.Console, TimeFormat: "15:04:05", NoColor: true}
	}

	writers := []io.Writer{
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: console},
			Level:  consoleLevel,
		},
	}

	var file *os.File
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir %s: %w", cfg.Dir, err)
		}
		name := filepath.Join(cfg.Dir, FilePrefix+cfg.Now().Format("2006-01-02")+".log")
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", name, err)
		}
		file = f
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: f},
			Level:  zerolog.InfoLevel,
		})
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	return &Logger{zl: zl, file: file}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// NewWithWriter returns a json logger writing every level to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{zl: zerolog.New(w).Level(zerolog.DebugLevel)}
}

// ParseLevel converts a level name to a zerolog level, defaulting to debug.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.DebugLevel
	}
}

// With returns a child logger tagged with the component name.
func (l *Logger) With(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger(), file: l.file}
}

func (l *Logger) Debug(msg string, fields ...any) { l.emit(l.zl.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...any)  { l.emit(l.zl.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields ...any)  { l.emit(l.zl.Warn(), msg, fields) }
func (l *Logger) Error(msg string, fields ...any) { l.emit(l.zl.Error(), msg, fields) }

// Close releases the log file. The console sink is left alone.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) emit(e *zerolog.Event, msg string, fields []any) {
	if e == nil {
		return
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case string:
			e = e.Str(key, Redact(v))
		case error:
			e = e.Str(key, Redact(v.Error()))
		case fmt.Stringer:
			e = e.Str(key, Redact(v.String()))
		default:
			e = e.Interface(key, v)
		}
	}
	e.Msg(Redact(msg))
}
