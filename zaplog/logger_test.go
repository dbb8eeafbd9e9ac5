package zaplog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/xerrors"

	"github.com/ydb-platform/optlog/internal/xtest"
	"github.com/ydb-platform/optlog/internal/zaplevel"
)

var errSync = xerrors.New("sync failed")

type failingSyncer struct {
	bytes.Buffer
}

func (*failingSyncer) Sync() error { return errSync }

func TestConsole(t *testing.T) {
	for _, tt := range []struct {
		name string
		opts []Option
		log  func(l *zap.Logger)
		exp  string
	}{
		{
			name: "info",
			log:  func(l *zap.Logger) { l.Named("test").Named("scope").Info("message") },
			exp:  "1984-04-04 00:00:00.000\tINFO\ttest.scope\tmessage\n",
		},
		{
			name: "namespace",
			opts: []Option{WithNamespace("ydb"), WithNamespace("pool")},
			log:  func(l *zap.Logger) { l.Warn("message") },
			exp:  "1984-04-04 00:00:00.000\tWARN\tydb.pool\tmessage\n",
		},
		{
			name: "trace",
			opts: []Option{WithMinLevel(zaplevel.Trace)},
			log:  func(l *zap.Logger) { l.Check(zaplevel.Trace, "message").Write() },
			exp:  "1984-04-04 00:00:00.000\tTRACE\tmessage\n",
		},
		{
			name: "below min level",
			log:  func(l *zap.Logger) { l.Debug("message") },
			exp:  "",
		},
		{
			name: "coloring",
			opts: []Option{WithColoring()},
			log:  func(l *zap.Logger) { l.Error("message") },
			exp:  "1984-04-04 00:00:00.000\t\x1b[31mERROR\x1b[0m\tmessage\n",
		},
		{
			name: "fields",
			log:  func(l *zap.Logger) { l.Info("message", zap.String("k", "v")) },
			exp:  "1984-04-04 00:00:00.000\tINFO\tmessage\t{\"k\": \"v\"}\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, closeLogger := New(append([]Option{
				WithClock(xtest.FakeClock()),
				WithWriter(&buf),
			}, tt.opts...)...)
			defer closeLogger()

			tt.log(l)

			require.Equal(t, tt.exp, buf.String())
		})
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	l, closeLogger := New(
		WithJSON(),
		WithMinLevel(zaplevel.Trace),
		WithClock(xtest.FakeClock()),
		WithWriter(&buf),
	)
	defer closeLogger()

	l.Named("db").Check(zaplevel.Trace, "message").Write(zap.Int("rows", 7))

	require.JSONEq(t,
		`{"level":"trace","ts":"1984-04-04T00:00:00.000Z","logger":"db","msg":"message","rows":7}`,
		buf.String(),
	)
}

func TestCaller(t *testing.T) {
	var buf bytes.Buffer
	l, closeLogger := New(WithCaller(), WithWriter(&buf))
	defer closeLogger()

	l.Info("message")

	require.Contains(t, buf.String(), "zaplog/logger_test.go:")
}

func TestInstall(t *testing.T) {
	var buf bytes.Buffer
	restore := Install(
		WithClock(xtest.FakeClock()),
		WithWriter(&buf),
	)

	zap.S().Infof("value=%d", 42)
	require.True(t, zap.L().Core().Enabled(zapcore.InfoLevel))

	require.NoError(t, restore())

	zap.S().Infof("after restore")
	require.False(t, zap.L().Core().Enabled(zapcore.ErrorLevel))
	require.Equal(t, "1984-04-04 00:00:00.000\tINFO\tvalue=42\n", buf.String())
}

func TestClock(t *testing.T) {
	fake := xtest.FakeClock()
	c := clock{fake}

	require.Equal(t, fake.Now(), c.Now())

	ticker := c.NewTicker(time.Second)
	ticker.Stop()
}

func TestNewRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, closeLogger := New(
		WithClock(xtest.FakeClock()),
		WithRotatingFile(Rotation{FilePath: path, MaxSize: 1}),
	)

	l.Info("to file")
	require.NoError(t, closeLogger())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1984-04-04 00:00:00.000\tINFO\tto file\n", string(data))
}

func TestCloseReportsSyncError(t *testing.T) {
	for _, tt := range []struct {
		name string
		opts []Option
		err  error
	}{
		{name: "stderr is not synced", opts: nil, err: nil},
		{name: "stdout is not synced", opts: []Option{WithWriter(os.Stdout)}, err: nil},
		{name: "other writers are", opts: []Option{WithWriter(&failingSyncer{})}, err: errSync},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, closeLogger := New(tt.opts...)
			err := closeLogger()
			if tt.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.err)
			}

			restore := Install(tt.opts...)
			err = restore()
			if tt.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.err)
			}
			require.False(t, zap.L().Core().Enabled(zapcore.ErrorLevel))
		})
	}
}
