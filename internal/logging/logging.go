// Package logging builds the zap logger shared by the CLI and the MCP server.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
	// File, when set, receives JSON logs with size-based rotation.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// New returns a logger writing to stderr. Stdout is reserved for tool output
// and the stdio MCP transport.
func New(cfg Config) (*zap.Logger, error) {
	return NewWithWriter(cfg, zapcore.Lock(os.Stderr))
}

// NewWithWriter is New with an explicit console sink.
func NewWithWriter(cfg Config, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	consoleEncoder, err := encoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	cores := []zapcore.Core{zapcore.NewCore(consoleEncoder, console, level)}

	if cfg.File != "" {
		fileEncoder, _ := encoder("json")
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, fileWriter, level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zap.ErrorLevel)), nil
}

func encoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")

	switch format {
	case "", "console":
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	case "json":
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewJSONEncoder(encoderConfig), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (expected console or json)", format)
	}
}
