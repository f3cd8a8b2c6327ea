package argio

import (
	"fmt"
	stdio "io"
	"strings"
)

// LogLevel is the severity of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat selects the prefix put in front of each message
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] ...
	LogFormatSymbols                  // ● ◆ ▲ ✗
	LogFormatPlain                    // no prefix
)

var symbols = map[LogLevel]string{
	LevelDebug:   "●",
	LevelInfo:    "◆",
	LevelWarning: "▲",
	LevelError:   "✗",
}

// Logger writes levelled messages through an IOManager. Warnings and errors
// go to the error stream, everything else to the output stream.
type Logger struct {
	io     *IOManager
	level  LogLevel
	format LogFormat
	name   string
	theme  Theme
}

// NewLogger creates an Info-level logger bound to m
func NewLogger(m *IOManager) *Logger {
	return &Logger{io: m, level: LevelInfo, theme: DefaultTheme(m)}
}

// WithLevel drops messages below level.
func (l *Logger) WithLevel(level LogLevel) *Logger { l.level = level; return l }

func (l *Logger) WithFormat(format LogFormat) *Logger { l.format = format; return l }

// WithName prefixes every message with "name: ".
func (l *Logger) WithName(name string) *Logger { l.name = name; return l }

func (l *Logger) WithTheme(theme Theme) *Logger { l.theme = theme; return l }

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return l != nil && level >= l.level
}

// Log writes one line at the given level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	fmt.Fprintln(l.writer(level), l.render(level, fmt.Sprintf(format, args...)))
}

func (l *Logger) render(level LogLevel, msg string) string {
	var b strings.Builder
	switch l.format {
	case LogFormatTagged:
		b.WriteString("[" + level.String() + "] ")
	case LogFormatSymbols:
		b.WriteString(symbols[level] + " ")
	case LogFormatPlain:
	}
	if l.name != "" {
		b.WriteString(l.name + ": ")
	}
	b.WriteString(msg)
	return NewStyle().Fg(l.color(level)).Sprint(l.io, b.String())
}

func (l *Logger) color(level LogLevel) ColorSpec {
	switch level {
	case LevelDebug:
		return l.theme.Debug
	case LevelWarning:
		return l.theme.Warning
	case LevelError:
		return l.theme.Error
	default:
		return l.theme.Info
	}
}

func (l *Logger) writer(level LogLevel) stdio.Writer {
	if level >= LevelWarning {
		return l.io.Err()
	}
	return l.io.Out()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
