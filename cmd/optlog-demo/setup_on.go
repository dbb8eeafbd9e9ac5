//go:build optlog
// +build optlog

package main

import (
	"golang.org/x/xerrors"

	"github.com/ydb-platform/optlog/zaplog"
)

func setup(config string) (teardown func() error, err error) {
	var cfg zaplog.Config
	if config != "" {
		cfg, err = zaplog.ReadFile(config)
	} else {
		cfg, err = zaplog.ReadEnv()
	}
	if err != nil {
		return nil, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, xerrors.Errorf("logging config: %w", err)
	}

	return zaplog.Install(opts...), nil
}
