// Package logging builds the storefront's zap logger and reads its log file
// back for the logs command. The TUI owns the terminal, so log output goes to
// a JSON file instead of stderr.
package logging

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger appending to path at the given level, and a
// function that flushes and closes the file. An empty path returns a no-op
// logger.
func New(path string, level zapcore.Level) (*zap.Logger, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log dir")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(EncoderConfig()), zapcore.AddSync(f), level)
	lg := zap.New(core, zap.AddCaller())
	closeFn := func() error {
		_ = lg.Sync()
		return f.Close()
	}
	return lg, closeFn, nil
}

// EncoderConfig is the field layout FormatLine expects.
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.LevelKey = "level"
	cfg.NameKey = "logger"
	cfg.MessageKey = "msg"
	cfg.CallerKey = "caller"
	cfg.StacktraceKey = "stacktrace"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}
