// Package log provides category-tagged structured logging for soroban.
//
// The clock owns the terminal, so nothing is written unless Init is called
// with a file path. Until then every call is a no-op.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category tags the subsystem a log line comes from.
type Category string

const (
	CatConfig Category = "config"
	CatRender Category = "render"
	CatTick   Category = "tick"
	CatUI     Category = "ui"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop().Sugar()
)

// Init opens path for appending and routes all logging there at the given
// level ("debug", "info", "warn", "error"). The returned function flushes the
// logger, restores the no-op logger and closes the file.
func Init(path, level string) (func() error, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		lvl = parsed
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	sink, closeSink, err := zap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), sink, zap.NewAtomicLevelAt(lvl))
	l := zap.New(core, zap.ErrorOutput(sink))
	SetLogger(l)

	return func() error {
		err := l.Sync()
		SetLogger(zap.NewNop())
		closeSink()
		return err
	}, nil
}

// SetLogger replaces the backing logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l.Sugar()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func with(cat Category, kv []any) []any {
	return append([]any{"cat", string(cat)}, kv...)
}

// Debug logs at debug level. kv are alternating keys and values.
func Debug(cat Category, msg string, kv ...any) {
	get().Debugw(msg, with(cat, kv)...)
}

// Info logs at info level.
func Info(cat Category, msg string, kv ...any) {
	get().Infow(msg, with(cat, kv)...)
}

// Warn logs at warn level.
func Warn(cat Category, msg string, kv ...any) {
	get().Warnw(msg, with(cat, kv)...)
}

// Error logs at error level.
func Error(cat Category, msg string, kv ...any) {
	get().Errorw(msg, with(cat, kv)...)
}

// ErrorErr logs err at error level under the "error" key.
func ErrorErr(cat Category, msg string, err error, kv ...any) {
	get().Errorw(msg, with(cat, append(kv, "error", err))...)
}

// SafeGo runs fn on a new goroutine, logging instead of crashing on panic.
func SafeGo(cat Category, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				Error(cat, "Recovered panic in goroutine", "goroutine", name, "panic", r, "stack", string(debug.Stack()))
			}
		}()
		fn()
	}()
}
