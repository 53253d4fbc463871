package cli

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv enables debug logging on stderr when set to 1
const DebugEnv = "PYENV_DEBUG"

// newLogger returns a console logger writing to w when PYENV_DEBUG=1, and a
// no-op logger otherwise. Format: DEBUG	pyenv	message	{fields}
func newLogger(w io.Writer) *zap.Logger {
	if os.Getenv(DebugEnv) != "1" {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("pyenv")
}
