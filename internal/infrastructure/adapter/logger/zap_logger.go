// Package logger adapts zap to the domain's Logger port.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fintrack-app/fintrack/internal/domain/port/core"
)

// ZapLogger routes the Logger port onto a zap backend. The level is held
// in zap's AtomicLevel so SetLevel works after construction.
type ZapLogger struct {
	logger   *zap.Logger
	zapLevel zap.AtomicLevel
}

// Options select the encoder and destination for the application logger.
// Zero values fall back to the environment's defaults.
type Options struct {
	Production bool
	Format     string // "json" or "console"
	OutputPath string // file path, "stdout" or "stderr"
	CallerInfo bool
}

// NewZapLogger builds the application logger. Production defaults to JSON
// with ISO-8601 timestamps, development to a colored console encoder; the
// options override either choice.
func NewZapLogger(opts Options) core.Logger {
	var cfg zap.Config

	if opts.Production {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if opts.Format != "" {
		cfg.Encoding = opts.Format
	}
	if cfg.Encoding == "json" {
		// color escape codes have no place inside JSON
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	}
	if opts.OutputPath != "" {
		cfg.OutputPaths = []string{opts.OutputPath}
	}
	cfg.DisableCaller = !opts.CallerInfo

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	zapLogger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger:   zapLogger,
		zapLevel: cfg.Level,
	}
}

// SetLevel sets the minimum level to output
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	switch level {
	case core.LogLevelDebug:
		l.zapLevel.SetLevel(zap.DebugLevel)
	case core.LogLevelWarn:
		l.zapLevel.SetLevel(zap.WarnLevel)
	case core.LogLevelError:
		l.zapLevel.SetLevel(zap.ErrorLevel)
	default:
		l.zapLevel.SetLevel(zap.InfoLevel)
	}
}

// mapToZapFields converts port fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush writes out buffered entries before shutdown
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
