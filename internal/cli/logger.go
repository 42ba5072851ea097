package cli

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates the CLI diagnostic logger
// Diagnostics are discarded unless debug is enabled, in which case they are written to w
func NewLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	))
}
