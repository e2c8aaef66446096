package logger

import (
	"fmt"

	"go.uber.org/zap"
)

type LogLevel string

const (
	LogLevelUnknown LogLevel = "unknown"
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
	LogLevelFatal   LogLevel = "fatal"
)

type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// NewConfig returns the base configuration: errors only, console encoding on stderr.
func NewConfig() *zap.Config {
	return &zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.ErrorLevel),
		Development:       false,
		Encoding:          "console",
		DisableStacktrace: true,
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
}

func SetLogLevel(cfg *zap.Config, level LogLevel) error {
	switch level {
	case LogLevelDebug:
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn:
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelError:
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LogLevelFatal:
		cfg.Level = zap.NewAtomicLevelAt(zap.FatalLevel)
	default:
		return fmt.Errorf("unexpected log level %s", level)
	}
	return nil
}

func SetLogFormat(cfg *zap.Config, format LogFormat) error {
	switch format {
	case LogFormatConsole:
		cfg.Encoding = "console"
	case LogFormatJSON:
		cfg.Encoding = "json"
	default:
		return fmt.Errorf("unexpected log format %s", format)
	}
	return nil
}

// Build creates a logger for level and format.
func Build(level LogLevel, format LogFormat) (*zap.Logger, error) {
	cfg := NewConfig()
	if err := SetLogLevel(cfg, level); err != nil {
		return nil, err
	}
	if err := SetLogFormat(cfg, format); err != nil {
		return nil, err
	}
	return cfg.Build()
}
