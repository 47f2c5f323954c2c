// Package logger provides leveled logging with support for debug, info, warn, and error levels.
// Output goes to stderr by default so it never interleaves with the interactive
// statistics printed on stdout.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a logging level
type Level int

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in production.
	DebugLevel Level = iota
	// InfoLevel reports session progress such as datasets loaded.
	InfoLevel
	// WarnLevel is the default for interactive use.
	WarnLevel
	// ErrorLevel logs are high-priority, e.g. an unreadable dataset.
	ErrorLevel
)

// ParseLevel converts a configured level name to a Level, defaulting to InfoLevel.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger provides leveled logging
type Logger struct {
	level  Level
	json   bool
	logger *log.Logger
}

var (
	mu            sync.Mutex
	defaultLogger *Logger
)

// Init initializes the default logger with the specified level and format, writing to stderr
func Init(level string, format string) {
	InitWithWriter(level, format, os.Stderr)
}

// InitWithWriter is like Init but writes to w.
func InitWithWriter(level string, format string, w io.Writer) {
	isJSON := strings.ToLower(format) == "json"

	flags := log.LstdFlags | log.Lmicroseconds | log.Lshortfile
	if isJSON {
		flags = 0
	}

	mu.Lock()
	defer mu.Unlock()
	defaultLogger = &Logger{
		level:  ParseLevel(level),
		json:   isJSON,
		logger: log.New(w, "", flags),
	}
}

func output(l Level, tag string, format string, args ...interface{}) {
	mu.Lock()
	lg := defaultLogger
	mu.Unlock()
	if lg == nil || lg.level > l {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if lg.json {
		msg = fmt.Sprintf(`{"level":%q,"msg":%q}`, strings.ToLower(tag), msg)
	} else {
		msg = "[" + tag + "] " + msg
	}
	_ = lg.logger.Output(3, msg)
}

// Debug logs a message at DebugLevel
func Debug(format string, args ...interface{}) {
	output(DebugLevel, "DEBUG", format, args...)
}

// Info logs a message at InfoLevel
func Info(format string, args ...interface{}) {
	output(InfoLevel, "INFO", format, args...)
}

// Warn logs a message at WarnLevel
func Warn(format string, args ...interface{}) {
	output(WarnLevel, "WARN", format, args...)
}

// Error logs a message at ErrorLevel
func Error(format string, args ...interface{}) {
	output(ErrorLevel, "ERROR", format, args...)
}

// Fatal logs a message at ErrorLevel and exits
func Fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf("[FATAL] "+format, args...)
	mu.Lock()
	lg := defaultLogger
	mu.Unlock()
	if lg != nil {
		_ = lg.logger.Output(2, msg)
	} else {
		log.Print(msg)
	}
	os.Exit(1)
}
