//go:build optlog
// +build optlog

package optlog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ydb-platform/optlog/internal/zaplevel"
)

// On reports whether calls forward to zap in this build.
const On = true

// frames between the user's call site and the zap call: the exported
// function and emit.
const callerSkip = 2

type Target string

func Logf(lvl Level, format string, args ...any) { emit("", lvl, format, args...) }
func Tracef(format string, args ...any)          { emit("", TRACE, format, args...) }
func Debugf(format string, args ...any)          { emit("", DEBUG, format, args...) }
func Infof(format string, args ...any)           { emit("", INFO, format, args...) }
func Warnf(format string, args ...any)           { emit("", WARN, format, args...) }
func Errorf(format string, args ...any)          { emit("", ERROR, format, args...) }

// Enabled reports whether the global zap core accepts records of the level.
func Enabled(lvl Level) bool { return enabled(lvl) }

func (t Target) Logf(lvl Level, format string, args ...any) { emit(t, lvl, format, args...) }
func (t Target) Tracef(format string, args ...any)          { emit(t, TRACE, format, args...) }
func (t Target) Debugf(format string, args ...any)          { emit(t, DEBUG, format, args...) }
func (t Target) Infof(format string, args ...any)           { emit(t, INFO, format, args...) }
func (t Target) Warnf(format string, args ...any)           { emit(t, WARN, format, args...) }
func (t Target) Errorf(format string, args ...any)          { emit(t, ERROR, format, args...) }

// Enabled ignores the target: zap cores filter by level only.
func (t Target) Enabled(lvl Level) bool { return enabled(lvl) }

func (l Level) zapLevel() (zapcore.Level, bool) {
	switch l {
	case TRACE:
		return zaplevel.Trace, true
	case DEBUG:
		return zapcore.DebugLevel, true
	case INFO:
		return zapcore.InfoLevel, true
	case WARN:
		return zapcore.WarnLevel, true
	case ERROR:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func enabled(lvl Level) bool {
	zl, ok := lvl.zapLevel()
	if !ok {
		return false
	}

	return zap.L().Core().Enabled(zl)
}

func sugar(t Target, skip int) *zap.SugaredLogger {
	s := zap.S()
	if t != "" {
		s = s.Named(string(t))
	}

	return s.WithOptions(zap.AddCallerSkip(skip))
}

func emit(t Target, lvl Level, format string, args ...any) {
	if !enabled(lvl) {
		return
	}
	switch lvl {
	case TRACE:
		tracef(sugar(t, callerSkip+1).Desugar(), format, args...)
	case DEBUG:
		sugar(t, callerSkip).Debugf(format, args...)
	case INFO:
		sugar(t, callerSkip).Infof(format, args...)
	case WARN:
		sugar(t, callerSkip).Warnf(format, args...)
	case ERROR:
		sugar(t, callerSkip).Errorf(format, args...)
	}
}

// tracef stands in for the sugared *f method zap lacks for the trace level.
// It adds one frame, so l must skip one more. emit has checked the level.
func tracef(l *zap.Logger, format string, args ...any) {
	if ce := l.Check(zaplevel.Trace, message(format, args)); ce != nil {
		ce.Write()
	}
}

// message follows zap's sugared formatting: the template alone without
// args, fmt.Sprint for an empty template and fmt.Sprintf otherwise.
func message(format string, args []any) string {
	switch {
	case len(args) == 0:
		return format
	case format != "":
		return fmt.Sprintf(format, args...)
	case len(args) == 1:
		if s, ok := args[0].(string); ok {
			return s
		}
	}

	return fmt.Sprint(args...)
}
