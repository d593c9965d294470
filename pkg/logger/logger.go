package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the whole service.
// Zero external deps; Init(level) is driven by the LOG_LEVEL env var.

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var (
	mu    sync.RWMutex
	out   *log.Logger = log.New(os.Stdout, "", 0)
	level Level       = LevelInfo
)

// Init sets the global log level (case-insensitive: debug, info, warn,
// error, fatal). Unknown values fall back to info.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		level = LevelDebug
	case "warn", "warning":
		level = LevelWarn
	case "error":
		level = LevelError
	case "fatal":
		level = LevelFatal
	default:
		level = LevelInfo
	}
}

// SetOutput redirects log output; tests use this to capture messages.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = log.New(w, "", 0)
}

func header(lvl string) string {
	return fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), strings.ToUpper(lvl))
}

func logf(l Level, lvl, format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	if l < level {
		return
	}
	out.Printf(header(lvl)+format, v...)
}

func Debugf(format string, v ...interface{}) { logf(LevelDebug, "debug", format, v...) }
func Infof(format string, v ...interface{})  { logf(LevelInfo, "info", format, v...) }
func Warnf(format string, v ...interface{})  { logf(LevelWarn, "warn", format, v...) }
func Errorf(format string, v ...interface{}) { logf(LevelError, "error", format, v...) }

func Fatalf(format string, v ...interface{}) {
	logf(LevelFatal, "fatal", format, v...)
	os.Exit(1)
}

func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	switch level {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "info"
}
