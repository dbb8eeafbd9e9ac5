// Package optlog provides logging calls that exist only when asked for.
/*
Library code calls optlog unconditionally:

	optlog.Infof("connected to %s", addr)
	optlog.Target("pool").Debugf("size=%d", n)

	if optlog.Enabled(optlog.TRACE) {
		optlog.Tracef("state: %s", dump(state))
	}

Built with the "optlog" tag, every call forwards to the global zap logger
(zap.L / zap.S) with the caller's own arguments and call site. Built without
it, every call is an empty function, Enabled returns false, and zap is not
linked into the binary at all:

	go build -tags optlog ./...

Which mode is active is fixed per build and reported by the On constant.
Both modes export the same API, so flipping the tag never breaks callers.
Package zaplog sets up the global zap logger the calls forward to.
*/
package optlog
