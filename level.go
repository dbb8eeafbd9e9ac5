package optlog

import "strings"

// Level is a log severity. Levels compare in increasing severity.
type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR

	// QUIET is never logged and never enabled.
	QUIET
)

const (
	lblTrace = "TRACE"
	lblDebug = "DEBUG"
	lblInfo  = "INFO"
	lblWarn  = "WARN"
	lblError = "ERROR"
	lblQuiet = "QUIET"
)

func (l Level) String() string {
	switch l {
	case TRACE:
		return lblTrace
	case DEBUG:
		return lblDebug
	case INFO:
		return lblInfo
	case WARN:
		return lblWarn
	case ERROR:
		return lblError
	default:
		return lblQuiet
	}
}

// FromString parses a level name ignoring case. Unknown names give QUIET.
func FromString(l string) Level {
	switch strings.ToUpper(l) {
	case lblTrace:
		return TRACE
	case lblDebug:
		return DEBUG
	case lblInfo:
		return INFO
	case lblWarn:
		return WARN
	case lblError:
		return ERROR
	default:
		return QUIET
	}
}
