package logger

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log      atomic.Pointer[zap.Logger]
	initOnce sync.Once
)

// Init builds the global zap logger for the given environment.
// Production logs JSON to stdout, everything else gets the colored
// development encoder.
func Init(env string) {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	log.Store(l)
}

// L returns the global logger, lazily initializing it if needed.
// Safe for concurrent first use.
func L() *zap.Logger {
	if l := log.Load(); l != nil {
		return l
	}
	initOnce.Do(func() {
		if log.Load() == nil {
			Init(os.Getenv("APP_ENV"))
		}
	})
	return log.Load()
}

// Sync flushes buffered log entries.
func Sync() {
	if l := log.Load(); l != nil {
		_ = l.Sync()
	}
}
