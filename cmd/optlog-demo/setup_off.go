//go:build !optlog
// +build !optlog

package main

import "log"

func setup(config string) (teardown func() error, err error) {
	if config != "" {
		log.Printf("-config %q ignored: built without the optlog tag", config)
	}

	return func() error { return nil }, nil
}
