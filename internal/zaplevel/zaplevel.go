// Package zaplevel adds a trace level to zap.
package zaplevel

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Trace sits one step below zap's debug level.
const Trace = zapcore.DebugLevel - 1

const (
	lblTrace = "TRACE"

	colorTrace = "\033[38m"
	colorReset = "\033[0m"
)

// Parse accepts every name known to zapcore plus "trace", ignoring case.
func Parse(text string) (zapcore.Level, error) {
	if strings.EqualFold(text, lblTrace) {
		return Trace, nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(text)); err != nil {
		return lvl, err
	}

	return lvl, nil
}

func String(l zapcore.Level) string {
	if l == Trace {
		return strings.ToLower(lblTrace)
	}

	return l.String()
}

func LowercaseLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(String(l))
}

func CapitalLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == Trace {
		enc.AppendString(lblTrace)

		return
	}
	zapcore.CapitalLevelEncoder(l, enc)
}

func CapitalColorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == Trace {
		enc.AppendString(colorTrace + lblTrace + colorReset)

		return
	}
	zapcore.CapitalColorLevelEncoder(l, enc)
}
