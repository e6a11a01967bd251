package config

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Prepare builds the console logger described by c, writing to w.
// Level "none" returns a no-op logger.
func (c LogConfig) Prepare(w io.Writer) (*zap.Logger, error) {
	name := strings.ToLower(c.Level)
	switch name {
	case "none":
		return zap.NewNop(), nil
	case "":
		name = "info"
	}

	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Level)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(ec),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core), nil
}
