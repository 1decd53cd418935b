package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown values map to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Logger is a leveled logger carrying a prefix and key/value fields.
// Derived loggers share the parent's output lock.
type Logger struct {
	mu       *sync.Mutex
	out      io.Writer
	level    Level
	prefix   string
	fields   map[string]any
	colorize bool
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the output destination.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// WithPrefix sets a prefix for log messages.
func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.prefix = prefix
	}
}

// WithColors enables or disables colorized output.
func WithColors(enabled bool) Option {
	return func(l *Logger) {
		l.colorize = enabled
	}
}

// New creates a new Logger with the given options.
func New(opts ...Option) *Logger {
	l := &Logger{
		mu:       &sync.Mutex{},
		out:      os.Stdout,
		level:    INFO,
		fields:   make(map[string]any),
		colorize: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLogger = New()

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

func (l *Logger) derive(prefix string, fields map[string]any) *Logger {
	return &Logger{
		mu:       l.mu,
		out:      l.out,
		level:    l.level,
		prefix:   prefix,
		fields:   fields,
		colorize: l.colorize,
	}
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return l.derive(l.prefix, merged)
}

// WithPrefix returns a new logger with the given prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return l.derive(prefix, l.fields)
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	var levelStr string
	if l.colorize {
		levelStr = colorize(level)
	} else {
		levelStr = fmt.Sprintf("%-5s", level.String())
	}

	_, file, line, ok := runtime.Caller(2)
	caller := ""
	if ok {
		if idx := strings.LastIndex(file, "/"); idx >= 0 {
			file = file[idx+1:]
		}
		caller = fmt.Sprintf("%s:%d", file, line)
	}

	formattedMsg := msg
	if len(args) > 0 {
		formattedMsg = fmt.Sprintf(msg, args...)
	}

	var sb strings.Builder
	sb.WriteString(timestamp)
	sb.WriteString(" ")
	sb.WriteString(levelStr)
	sb.WriteString(" ")

	if l.prefix != "" {
		sb.WriteString("[")
		sb.WriteString(l.prefix)
		sb.WriteString("] ")
	}

	if caller != "" {
		sb.WriteString("[")
		sb.WriteString(caller)
		sb.WriteString("] ")
	}

	sb.WriteString(formattedMsg)

	// Fields are written in key order so lines are stable across runs.
	if len(l.fields) > 0 {
		keys := make([]string, 0, len(l.fields))
		for k := range l.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(" ")
			sb.WriteString(k)
			sb.WriteString("=")
			sb.WriteString(fmt.Sprintf("%v", l.fields[k]))
		}
	}

	sb.WriteString("\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.out, sb.String())
}

func colorize(level Level) string {
	var color string
	switch level {
	case DEBUG:
		color = "\033[36m"
	case INFO:
		color = "\033[32m"
	case WARN:
		color = "\033[33m"
	case ERROR:
		color = "\033[31m"
	default:
		color = "\033[0m"
	}
	return fmt.Sprintf("%s%-5s\033[0m", color, level.String())
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(DEBUG, msg, args...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.log(INFO, msg, args...)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(WARN, msg, args...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.log(ERROR, msg, args...)
}

// Package-level functions that use the default logger.

func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { defaultLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

type ctxKey struct{}

// FromContext returns the logger from the context, or the default logger.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return defaultLogger
	}
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// NewContext returns a new context with the given logger.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}
