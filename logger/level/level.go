package level

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the severity of a log entry. Lower is more severe.
type Level int8

const (
	// PanicLevel entries are written right before a panic.
	PanicLevel Level = iota
	// FatalLevel entries are written right before the process exits.
	FatalLevel
	// ErrorLevel is for failed requests and failed inputs.
	ErrorLevel
	// WarnLevel is for rejected but well-handled input.
	WarnLevel
	// InfoLevel is one entry per request or processed input.
	InfoLevel
	// DebugLevel adds per-operation detail.
	DebugLevel
	// TraceLevel is the most verbose.
	TraceLevel
)

var ErrUnknownLevel = errors.New("unknown log level")

var names = [...]string{
	PanicLevel: "panic",
	FatalLevel: "fatal",
	ErrorLevel: "error",
	WarnLevel:  "warning",
	InfoLevel:  "info",
	DebugLevel: "debug",
	TraceLevel: "trace",
}

// AllLevels lists every level from the most to the least severe.
var AllLevels = []Level{
	PanicLevel,
	FatalLevel,
	ErrorLevel,
	WarnLevel,
	InfoLevel,
	DebugLevel,
	TraceLevel,
}

func (l Level) Valid() bool {
	return l >= PanicLevel && l <= TraceLevel
}

// String converts the Level to a string. E.g. PanicLevel becomes "panic".
func (l Level) String() string {
	if l.Valid() {
		return names[l]
	}

	return "unknown"
}

// Parse takes a level name. "warn" is accepted for WarnLevel.
func Parse(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warn" {
		return WarnLevel, nil
	}

	for l, name := range names {
		if name == s {
			return Level(l), nil
		}
	}

	return -1, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, errors.Wrapf(ErrUnknownLevel, "%d", l)
	}

	return []byte(names[l]), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}

	*l = v
	return nil
}

// Set and Type make *Level usable as a command line flag value.
func (l *Level) Set(s string) error {
	return l.UnmarshalText([]byte(s))
}

func (l *Level) Type() string {
	return "level"
}
