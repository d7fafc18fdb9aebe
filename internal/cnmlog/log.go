// Package cnmlog is a thin facade over zap, in the shape of whereabouts'
// pkg/logging: package-level level/sink state and Verbosef/Debugf/Errorf
// helpers, so call sites never import zap directly.
package cnmlog

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors whereabouts' pkg/logging.Level ordering.
type Level uint32

const (
	PanicLevel Level = iota
	ErrorLevel
	VerboseLevel
	DebugLevel
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case PanicLevel:
		return zapcore.DPanicLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case DebugLevel:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

var (
	mu      sync.RWMutex
	level   = VerboseLevel
	sugar   *zap.SugaredLogger
	stderr  = true
	logFile *os.File
)

func init() {
	rebuild()
}

func rebuild() {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var sinks []zapcore.Core
	enc := zapcore.NewJSONEncoder(cfg)
	lvl := zap.NewAtomicLevelAt(level.zapLevel())
	if stderr {
		sinks = append(sinks, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), lvl))
	}
	if logFile != nil {
		sinks = append(sinks, zapcore.NewCore(enc, zapcore.Lock(logFile), lvl))
	}
	core := zapcore.NewTee(sinks...)
	sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// SetLevel changes the minimum emitted level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	rebuild()
}

// SetStderr toggles stderr as a sink (on by default, as in whereabouts).
func SetStderr(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	stderr = enabled
	rebuild()
}

// SetFile adds an additional file sink. Pass nil to remove it.
func SetFile(f *os.File) {
	mu.Lock()
	defer mu.Unlock()
	logFile = f
	rebuild()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debugf(format string, args ...interface{}) {
	get().Debugf(format, args...)
}

func Verbosef(format string, args ...interface{}) {
	get().Infof(format, args...)
}

// Errorf logs at error level and returns the formatted error, mirroring
// whereabouts' pkg/logging.Errorf signature so call sites can
// `return logging.Errorf(...)` directly from a function returning error.
func Errorf(format string, args ...interface{}) error {
	get().Errorf(format, args...)
	return fmt.Errorf(format, args...)
}

// Logr bridges this package's zap core into a logr.Logger. cnm-controller
// and cnm-admission pass it to controller-runtime's manager, so
// controller-runtime emits through the same sink as cnmlog's own
// Verbosef/Debugf/Errorf calls; klog's output is not redirected.
func Logr() logr.Logger {
	return zapr.NewLogger(get().Desugar())
}
