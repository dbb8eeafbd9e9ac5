// Command optlog-demo logs a few lines through optlog.
//
//	go run ./cmd/optlog-demo                 # prints nothing, zap is not linked
//	go run -tags optlog ./cmd/optlog-demo    # prints through zap
//
// With the tag, the logger is configured from OPTLOG_* variables or from
// the YAML file passed with -config.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/ydb-platform/optlog"
)

func main() {
	var (
		config string
		items  int
	)
	flag.StringVar(&config,
		"config", "",
		"path to YAML logging config",
	)
	flag.IntVar(&items,
		"items", 3,
		"number of items to process",
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("[optlog-demo] ")

	teardown, err := setup(config)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := teardown(); err != nil {
			log.Print(err)
		}
	}()

	run(items)
}

func run(items int) {
	optlog.Infof("starting: items=%d", items)

	worker := optlog.Target("demo.worker")
	start := time.Now()
	for i := 0; i < items; i++ {
		worker.Debugf("processing item %d", i)
		if optlog.Enabled(optlog.TRACE) {
			worker.Tracef("item %d state: %s", i, describe(i))
		}
	}
	if items == 0 {
		optlog.Warnf("nothing to process")
	}

	optlog.Logf(optlog.INFO, "done in %v", time.Since(start))
}

func describe(i int) string {
	if i%2 == 0 {
		return "even"
	}

	return "odd"
}
