package zaplog

import (
	"io"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Option func(o *options)

type options struct {
	minLevel  zapcore.Level
	json      bool
	coloring  bool
	caller    bool
	namespace []string
	clock     clockwork.Clock
	w         io.Writer
	closer    io.Closer
}

// Rotation configures file output rotated by size.
type Rotation struct {
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

func WithMinLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.minLevel = level
	}
}

func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithColoring colors level names. It has no effect on JSON output.
func WithColoring() Option {
	return func(o *options) {
		o.coloring = true
	}
}

func WithCaller() Option {
	return func(o *options) {
		o.caller = true
	}
}

func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.namespace = append(o.namespace, namespace)
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.w = w
		o.closer = nil
	}
}

func WithRotatingFile(r Rotation) Option {
	return func(o *options) {
		l := &lumberjack.Logger{
			Filename:   r.FilePath,
			MaxSize:    r.MaxSize,
			MaxBackups: r.MaxBackups,
			MaxAge:     r.MaxAge,
			Compress:   r.Compress,
		}
		o.w = l
		o.closer = l
	}
}
