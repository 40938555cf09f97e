package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	FormatPretty = "pretty"
	BooleanTrue  = "true"
)

// Logger wraps zerolog.Logger with the name of the program that owns it.
type Logger struct {
	logger zerolog.Logger
	name   string
}

// Init configures the global logger.
func Init(cfg Config) {
	cfg.ApplyDefaults()
	globalLogger = New(&cfg, "default")
}

// New creates a logger writing to the output named in cfg.
func New(cfg *Config, name string) *Logger {
	return NewWithWriter(cfg, name, outputWriter(cfg.Output))
}

// NewWithWriter creates a logger writing to w. Console and pretty formats
// are rendered through zerolog.ConsoleWriter.
func NewWithWriter(cfg *Config, name string, w io.Writer) *Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if isConsole(cfg.Format) {
		zl = zerolog.New(consoleWriter(cfg, name, w))
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}

	return &Logger{logger: zl, name: name}
}

// NewDefault creates a console logger on stderr at info level.
func NewDefault(name string) *Logger {
	cfg := &Config{
		Level:     "info",
		Format:    "console",
		Output:    "stderr",
		Timestamp: true,
	}
	return New(cfg, name)
}

// NewFromEnv creates a logger configured from LOG_* environment variables.
func NewFromEnv(name string) *Logger {
	cfg := &Config{
		Level:     getEnvOrDefault("LOG_LEVEL", "info"),
		Format:    getEnvOrDefault("LOG_FORMAT", "console"),
		Output:    getEnvOrDefault("LOG_OUTPUT", "stderr"),
		NoColor:   getEnvOrDefault("LOG_NO_COLOR", "false") == BooleanTrue,
		Timestamp: getEnvOrDefault("LOG_TIMESTAMP", "true") == BooleanTrue,
	}
	return New(cfg, name)
}

// Name returns the program name the logger was created with.
func (l *Logger) Name() string { return l.name }

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		logger: l.logger.With().Str(FieldComponent, component).Logger(),
		name:   l.name,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), name: l.name}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		logger: l.logger.With().Err(err).Logger(),
		name:   l.name,
	}
}

// Zerolog returns the underlying zerolog.Logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.logger
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	emit(l.logger.Debug(), msg, fields)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	emit(l.logger.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...map[string]any) {
	emit(l.logger.Warn(), msg, fields)
}

func (l *Logger) Error(msg string, fields ...map[string]any) {
	emit(l.logger.Error(), msg, fields)
}

// --- Global logger ---

var globalLogger *Logger

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) { globalLogger = l }

// GetGlobalLogger returns the global logger, creating a default one if needed.
func GetGlobalLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewDefault("default")
	}
	return globalLogger
}

func Debug(msg string, fields ...map[string]any) { GetGlobalLogger().Debug(msg, fields...) }

func Info(msg string, fields ...map[string]any) { GetGlobalLogger().Info(msg, fields...) }

func Warn(msg string, fields ...map[string]any) { GetGlobalLogger().Warn(msg, fields...) }

func Error(msg string, fields ...map[string]any) { GetGlobalLogger().Error(msg, fields...) }

// WithComponent returns a component-tagged logger from the global logger.
func WithComponent(component string) *Logger {
	return GetGlobalLogger().WithComponent(component)
}

// --- internal helpers ---

func emit(event *zerolog.Event, msg string, fields []map[string]any) {
	for _, fm := range fields {
		for k, v := range fm {
			event = event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

func isConsole(format string) bool {
	switch strings.ToLower(format) {
	case "console", "text", FormatPretty:
		return true
	}
	return false
}

func outputWriter(output string) io.Writer {
	if strings.ToLower(output) == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

var levelTags = map[string]struct{ tag, color string }{
	"TRACE": {"[TRC]", "\033[90m"},
	"DEBUG": {"[DBG]", "\033[36m"},
	"INFO":  {"[INF]", "\033[32m"},
	"WARN":  {"[WRN]", "\033[33m"},
	"ERROR": {"[ERR]", "\033[31m"},
	"FATAL": {"[FTL]", "\033[35m"},
}

func consoleWriter(cfg *Config, name string, w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i any) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			t, ok := levelTags[lvl]
			if !ok {
				return fmt.Sprintf("[%s]", lvl)
			}
			if cfg.NoColor {
				return t.tag
			}
			return t.color + t.tag + "\033[0m"
		},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			if name != "" && name != "default" {
				return fmt.Sprintf("%s: %s", name, i)
			}
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i any) string {
			return fmt.Sprintf("%s:", i)
		},
		FormatFieldValue: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
	}
}
