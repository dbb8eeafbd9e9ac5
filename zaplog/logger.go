package zaplog

import (
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"

	"github.com/ydb-platform/optlog/internal/zaplevel"
)

const dateLayout = "2006-01-02 15:04:05.000"

// New builds a zap logger. The defaults are console output to stderr at
// info level. closeLogger syncs the logger and closes a rotating file.
func New(opts ...Option) (l *zap.Logger, closeLogger func() error) {
	l, o := build(opts...)

	return l, closer(l, o)
}

// Install makes the built logger zap's global one, which optlog forwards
// to. restore puts the previous globals back, then syncs the logger and
// closes a rotating file.
func Install(opts ...Option) (restore func() error) {
	l, o := build(opts...)
	undo := zap.ReplaceGlobals(l)
	closeLogger := closer(l, o)

	return func() error {
		undo()

		return closeLogger()
	}
}

func closer(l *zap.Logger, o options) func() error {
	return func() error {
		// Sync on a terminal or pipe fails with EINVAL, and there is
		// nothing buffered to lose there.
		if o.w != os.Stderr && o.w != os.Stdout {
			if err := l.Sync(); err != nil {
				return xerrors.Errorf("sync logger: %w", err)
			}
		}
		if o.closer != nil {
			if err := o.closer.Close(); err != nil {
				return xerrors.Errorf("close log file: %w", err)
			}
		}

		return nil
	}
}

func build(opts ...Option) (*zap.Logger, options) {
	o := options{
		minLevel: zapcore.InfoLevel,
		clock:    clockwork.NewRealClock(),
		w:        os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	cfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zaplevel.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(dateLayout),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var enc zapcore.Encoder
	switch {
	case o.json:
		cfg.EncodeLevel = zaplevel.LowercaseLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	case o.coloring:
		cfg.EncodeLevel = zaplevel.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(o.w), zap.NewAtomicLevelAt(o.minLevel))

	zopts := []zap.Option{zap.WithClock(clock{o.clock})}
	if o.caller {
		zopts = append(zopts, zap.AddCaller())
	}

	l := zap.New(core, zopts...)
	for _, name := range o.namespace {
		l = l.Named(name)
	}

	return l, o
}

// clock adapts clockwork to zapcore.Clock. zap only asks for tickers when
// buffering writes, which build never sets up.
type clock struct {
	c clockwork.Clock
}

func (c clock) Now() time.Time {
	return c.c.Now()
}

func (c clock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
