package neutronbirth

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the package logger; a no-op until InitLogger is called.
	Log = zap.NewNop()
	// Sugar is the sugared form of Log, used by DebugLog.
	Sugar = Log.Sugar()
)

// InitLogger replaces Log with a stdout logger in the given format
// ("console" or "json"). The level follows Debug.
func InitLogger(format string) error {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if format == "json" {
		cfg.Encoding = "json"
	}
	if Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	Sugar = l.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Log.Sync()
}
