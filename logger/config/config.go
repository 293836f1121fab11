package config

import (
	"io"
	"os"
	"sync"

	"github.com/iostrovok/trimothy/logger/level"
)

// Standard fields written with every entry.
const (
	DefaultTimestampFormat = "2006-01-02T15:04:05.999Z07:00"

	MessageField      = "message"       // formatted message. type: text
	ErrorMessageField = "error.message" // accumulated error. type: text
	TimestampField    = "@timestamp"    // entry time. type: date
	LevelField        = "@level"        // entry level. type: keyword
)

type Config struct {
	sync.RWMutex

	level      level.Level
	writer     io.Writer
	timeFormat string

	// keys maps a standard field to the name it is written under.
	keys map[string]string
}

func NewConfig() *Config {
	return &Config{
		writer:     os.Stderr,
		level:      level.InfoLevel,
		timeFormat: DefaultTimestampFormat,
		keys: map[string]string{
			MessageField:      MessageField,
			ErrorMessageField: ErrorMessageField,
			TimestampField:    TimestampField,
			LevelField:        LevelField,
		},
	}
}

func (cf *Config) Clone() *Config {
	cf.RLock()
	defer cf.RUnlock()

	out := &Config{
		writer:     cf.writer,
		level:      cf.level,
		timeFormat: cf.timeFormat,
		keys:       make(map[string]string, len(cf.keys)),
	}

	for k, v := range cf.keys {
		out.keys[k] = v
	}

	return out
}

// Key returns the name the standard field is written under.
func (cf *Config) Key(field string) string {
	cf.RLock()
	defer cf.RUnlock()

	if name, find := cf.keys[field]; find {
		return name
	}

	return field
}

// RenameKey writes the standard field under name. Unknown fields and empty
// names are ignored.
func (cf *Config) RenameKey(field, name string) *Config {
	if name == "" {
		return cf
	}

	cf.Lock()
	defer cf.Unlock()

	if _, find := cf.keys[field]; find {
		cf.keys[field] = name
	}

	return cf
}

func (cf *Config) Level() level.Level {
	cf.RLock()
	defer cf.RUnlock()

	return cf.level
}

func (cf *Config) SetLevel(lvl level.Level) *Config {
	cf.Lock()
	defer cf.Unlock()

	cf.level = lvl
	return cf
}

// Enabled reports whether entries of lvl are written.
func (cf *Config) Enabled(lvl level.Level) bool {
	return lvl <= cf.Level()
}

func (cf *Config) Writer() io.Writer {
	cf.RLock()
	defer cf.RUnlock()

	return cf.writer
}

func (cf *Config) SetWriter(writer io.Writer) *Config {
	if writer == nil {
		writer = io.Discard
	}

	cf.Lock()
	defer cf.Unlock()

	cf.writer = writer
	return cf
}

func (cf *Config) TimeFormat() string {
	cf.RLock()
	defer cf.RUnlock()

	return cf.timeFormat
}

func (cf *Config) SetTimeFormat(format string) *Config {
	cf.Lock()
	defer cf.Unlock()

	cf.timeFormat = format
	return cf
}
