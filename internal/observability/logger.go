// Package observability sets up the process-wide zap logger.
package observability

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalLogger atomic.Pointer[zap.Logger]
	once         sync.Once
)

// LoggerConfig selects level, format and an optional rotating log file.
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Format      string // console or json
	ServiceName string
	LogFile     string // empty disables the file sink
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
	Compress    bool
}

// DefaultLoggerConfig logs info and above to the console.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:       "info",
		Format:      "console",
		ServiceName: "boids3d",
		MaxSizeMB:   50,
		MaxBackups:  3,
		MaxAgeDays:  7,
	}
}

// Initialize builds the global logger. Only the first call has an effect.
// The file sink, when enabled, always writes JSON.
func Initialize(cfg LoggerConfig, console zapcore.WriteSyncer) {
	once.Do(func() {
		level := zap.NewAtomicLevel()
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level.SetLevel(zap.InfoLevel)
		}

		cores := []zapcore.Core{zapcore.NewCore(encoder(cfg.Format), console, level)}
		if cfg.LogFile != "" {
			file := zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   cfg.Compress,
			})
			cores = append(cores, zapcore.NewCore(encoder("json"), file, level))
		}

		logger := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel))
		if cfg.ServiceName != "" {
			logger = logger.Named(cfg.ServiceName)
		}
		globalLogger.Store(logger)
		zap.ReplaceGlobals(logger)
	})
}

// InitializeLogger initializes the global logger on a locked stdout.
func InitializeLogger(cfg LoggerConfig) {
	Initialize(cfg, zapcore.Lock(os.Stdout))
}

func encoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	if format == "json" {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	ec.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(name + ".")
	}
	return zapcore.NewConsoleEncoder(ec)
}

// GetLogger returns the global logger, or a development logger if Initialize
// has not been called yet.
func GetLogger() *zap.Logger {
	if logger := globalLogger.Load(); logger != nil {
		return logger
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("fallback")
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	logger := globalLogger.Load()
	if logger == nil {
		return
	}
	if err := logger.Sync(); err != nil &&
		!strings.Contains(err.Error(), "/dev/stdout") &&
		!strings.Contains(err.Error(), "invalid argument") &&
		!strings.Contains(err.Error(), "inappropriate ioctl") {
		_, _ = os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
	}
}

// ResetForTest forgets the global logger so Initialize can run again.
func ResetForTest() {
	globalLogger.Store(nil)
	once = sync.Once{}
}
