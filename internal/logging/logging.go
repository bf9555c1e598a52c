package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/raysh454/siteforge/internal/interfaces"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Aliases so callers can depend on logging.Logger without importing
// interfaces directly.
type (
	Logger = interfaces.Logger
	Field  = interfaces.Field
)

// Config controls the zerolog backend.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Console bool   // human-readable console writer instead of raw JSON
	LogDir  string // when set, logs are also written to a rotated file

	// Rotation settings, used only when LogDir is set.
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Console:    true,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
		Compress:   true,
	}
}

// ZerologLogger implements interfaces.Logger on top of zerolog.
type ZerologLogger struct {
	zl zerolog.Logger
}

// New builds a logger according to cfg. When cfg.LogDir is set the output is
// duplicated into a size-rotated file under that directory.
func New(cfg Config) (*ZerologLogger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return nil, err
		}
		rotated := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "siteforge.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = io.MultiWriter(out, rotated)
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &ZerologLogger{zl: zl}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *ZerologLogger {
	return &ZerologLogger{zl: zerolog.Nop()}
}

func (l *ZerologLogger) emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, fields ...Field) { l.emit(l.zl.Debug(), msg, fields) }
func (l *ZerologLogger) Info(msg string, fields ...Field)  { l.emit(l.zl.Info(), msg, fields) }
func (l *ZerologLogger) Warn(msg string, fields ...Field)  { l.emit(l.zl.Warn(), msg, fields) }
func (l *ZerologLogger) Error(msg string, fields ...Field) { l.emit(l.zl.Error(), msg, fields) }

func (l *ZerologLogger) With(fields ...Field) Logger {
	ctx := l.zl.With()
	for _, f := range fields {
		ctx = ctx.Interface(f.Key, f.Value)
	}
	return &ZerologLogger{zl: ctx.Logger()}
}
