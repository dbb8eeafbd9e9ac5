package xtest

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Epoch is the time every FakeClock starts at.
var Epoch = time.Date(1984, time.April, 4, 0, 0, 0, 0, time.UTC)

// FakeClock returns a fake clock stopped at Epoch, so formatted log lines
// carry a fixed "1984-04-04 00:00:00.000" timestamp.
func FakeClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(Epoch)
}
