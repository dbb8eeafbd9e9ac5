package zaplog

import (
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/xerrors"

	"github.com/ydb-platform/optlog/internal/zaplevel"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

var (
	ErrUnknownLevel  = xerrors.New("unknown log level")
	ErrUnknownFormat = xerrors.New("unknown log format")
	ErrUnknownOutput = xerrors.New("unknown log output")
	ErrEmptyFilePath = xerrors.New("empty log file path")
)

// Config describes the global zap logger. It is read from YAML and the
// OPTLOG_* environment variables.
type Config struct {
	// Level is a zap level name or "trace".
	Level string `yaml:"level" env:"OPTLOG_LEVEL" env-default:"info"`

	// Format is "console" or "json".
	Format string `yaml:"format" env:"OPTLOG_FORMAT" env-default:"console"`

	// Output is "stderr", "stdout" or "file".
	Output string `yaml:"output" env:"OPTLOG_OUTPUT" env-default:"stderr"`

	// Name is the root logger name, empty for none.
	Name string `yaml:"name" env:"OPTLOG_NAME"`

	Coloring bool `yaml:"coloring" env:"OPTLOG_COLORING"`
	Caller   bool `yaml:"caller" env:"OPTLOG_CALLER"`

	// The rest applies to Output "file" only.
	FilePath   string `yaml:"filePath" env:"OPTLOG_FILE_PATH"`
	MaxSize    int    `yaml:"maxSize" env:"OPTLOG_MAX_SIZE" env-default:"100"`
	MaxBackups int    `yaml:"maxBackups" env:"OPTLOG_MAX_BACKUPS" env-default:"3"`
	MaxAge     int    `yaml:"maxAge" env:"OPTLOG_MAX_AGE" env-default:"7"`
	Compress   bool   `yaml:"compress" env:"OPTLOG_COMPRESS"`
}

func ReadEnv() (cfg Config, err error) {
	if err = cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, xerrors.Errorf("read logging config from env: %w", err)
	}

	return cfg, nil
}

// ReadFile reads a YAML config. Environment variables override the file.
func ReadFile(path string) (cfg Config, err error) {
	if err = cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, xerrors.Errorf("read logging config %q: %w", path, err)
	}

	return cfg, nil
}

// Options validates the config and converts it into options for New and
// Install.
func (c Config) Options() ([]Option, error) {
	lvl, err := zaplevel.Parse(c.Level)
	if err != nil {
		return nil, xerrors.Errorf("level %q: %w", c.Level, ErrUnknownLevel)
	}
	opts := []Option{WithMinLevel(lvl)}

	switch strings.ToLower(c.Format) {
	case "", FormatConsole:
	case FormatJSON:
		opts = append(opts, WithJSON())
	default:
		return nil, xerrors.Errorf("format %q: %w", c.Format, ErrUnknownFormat)
	}

	switch strings.ToLower(c.Output) {
	case "", OutputStderr:
		opts = append(opts, WithWriter(os.Stderr))
	case OutputStdout:
		opts = append(opts, WithWriter(os.Stdout))
	case OutputFile:
		if c.FilePath == "" {
			return nil, xerrors.Errorf("output %q: %w", c.Output, ErrEmptyFilePath)
		}
		opts = append(opts, WithRotatingFile(Rotation{
			FilePath:   c.FilePath,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}))
	default:
		return nil, xerrors.Errorf("output %q: %w", c.Output, ErrUnknownOutput)
	}

	if c.Name != "" {
		opts = append(opts, WithNamespace(c.Name))
	}
	if c.Coloring {
		opts = append(opts, WithColoring())
	}
	if c.Caller {
		opts = append(opts, WithCaller())
	}

	return opts, nil
}
