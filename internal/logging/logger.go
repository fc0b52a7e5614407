package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the diagnostic log inside the logs directory.
const FileName = "robotfindskitten.log"

// Logger appends timestamped lines to logs/robotfindskitten.log. The
// terminal belongs to the game while it runs, so nothing goes to stderr.
type Logger struct {
	zl   *zap.Logger
	file *os.File
}

// New creates (or reuses) the log file in logDir.
func New(logDir string, verbose bool) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	path := filepath.Join(logDir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(f), level)
	return &Logger{zl: zap.New(core), file: f}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop()}
}

// Zap exposes the underlying logger for structured fields.
func (l *Logger) Zap() *zap.Logger {
	if l == nil || l.zl == nil {
		return zap.NewNop()
	}
	return l.zl
}

// Close flushes and releases the file handle.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	if l.zl != nil {
		_ = l.zl.Sync()
	}
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single info line.
func (l *Logger) Printf(format string, args ...any) {
	l.log(zapcore.InfoLevel, format, args...)
}

// Debugf writes a debug line; dropped unless verbose.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(zapcore.DebugLevel, format, args...)
}

// Warnf writes a warning line.
func (l *Logger) Warnf(format string, args ...any) {
	l.log(zapcore.WarnLevel, format, args...)
}

// Errorf writes an error line.
func (l *Logger) Errorf(format string, args ...any) {
	l.log(zapcore.ErrorLevel, format, args...)
}

func (l *Logger) log(level zapcore.Level, format string, args ...any) {
	if l == nil || l.zl == nil {
		return
	}
	if ce := l.zl.Check(level, strings.TrimRight(fmt.Sprintf(format, args...), "\n")); ce != nil {
		ce.Write()
	}
}
