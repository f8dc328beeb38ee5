package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The store and importer treat persistence and decoding as best-effort:
// failures are logged, never surfaced. This package provides the
// operational log those policies write to.

// Nop returns a logger that discards everything. Library code that is
// handed a nil logger should fall back to this.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// NewFile returns a JSON logger appending to path. The TUI owns the
// terminal, so its operational log has to go to a file. If the file
// cannot be opened the returned logger is a nop: logging is never a
// reason to fail startup.
func NewFile(path string) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	sink, _, err := zap.Open(path)
	if err != nil {
		return zap.NewNop()
	}
	core := zapcore.NewCore(encoder, sink, zapcore.InfoLevel)
	return zap.New(core)
}
