// file: sltree/logger/logger.go
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rskv-p/sltree/constant"
)

const timeFormat = "15:04:05"

// ----------------------------------------------------
// Config
// ----------------------------------------------------

// Config selects level, format and sinks of the process logger.
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // console or json
	File   string    // optional rotating log file
	Out    io.Writer // defaults to os.Stderr

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var defaultConfig = Config{
	Level:      constant.DefaultLogLevel,
	Format:     constant.DefaultLogFormat,
	MaxSizeMB:  10,
	MaxBackups: 5,
	MaxAgeDays: 7,
}

func applyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.Format == "" {
		cfg.Format = defaultConfig.Format
	}
	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = defaultConfig.MaxSizeMB
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = defaultConfig.MaxAgeDays
	}
}

// ----------------------------------------------------
// Init
// ----------------------------------------------------

var (
	sinkMu sync.Mutex
	sink   *lumberjack.Logger
)

// fileSink returns the rotating writer for cfg.File. At most one sink is
// open: it is reused for the same file and closed when the file changes.
func fileSink(cfg Config) (*lumberjack.Logger, error) {
	sinkMu.Lock()
	defer sinkMu.Unlock()

	if sink != nil && sink.Filename == cfg.File {
		return sink, nil
	}
	if err := closeSink(); err != nil {
		return nil, err
	}
	if cfg.File == "" {
		return nil, nil
	}
	sink = &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	return sink, nil
}

func closeSink() error {
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	if err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// Close releases the log file opened by Init, if any.
func Close() error {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	return closeSink()
}

// Init replaces the global zerolog logger.
func Init(cfg Config) error {
	applyDefaults(&cfg)

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	format, err := ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	writers := []io.Writer{consoleOrJSON(cfg.Out, format)}
	file, err := fileSink(cfg)
	if err != nil {
		return err
	}
	if file != nil {
		writers = append(writers, file)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger()
	return nil
}

func consoleOrJSON(out io.Writer, format string) io.Writer {
	if format == "json" {
		return out
	}
	if IsTerminal(out) {
		return ConsoleWriterWithStyles(DefaultStyles(out))
	}
	return PlainConsoleWriter(out)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ----------------------------------------------------
// Parsing
// ----------------------------------------------------

// ParseLevel maps a level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	}
	return zerolog.NoLevel, fmt.Errorf("%w: %q", constant.ErrInvalidLogLevel, s)
}

// ParseFormat accepts console or json.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", "console":
		return "console", nil
	case "json":
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", constant.ErrInvalidLogFormat, s)
}

// ----------------------------------------------------
// Scoped loggers
// ----------------------------------------------------

// New returns a child of the global logger tagged with module.
func New(module string) zerolog.Logger {
	return log.With().Str("module", module).Logger()
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// From returns the logger attached to ctx, or the global logger.
func From(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &log.Logger
}
