package logger

import (
	"io"
	"sync"

	"github.com/pkg/errors"

	"github.com/iostrovok/trimothy/logger/config"
	"github.com/iostrovok/trimothy/logger/level"
)

// Logger collects fields and an error and writes them as one JSON line per
// entry. Fields survive between entries, so a logger is usually cloned per
// request or per input.
type Logger struct {
	sync.RWMutex
	config *config.Config

	err    error
	fields Fields
}

func New() *Logger {
	return &Logger{
		fields: Fields{},
		config: config.NewConfig(),
	}
}

// SetConfig installs a copy of cf.
func (l *Logger) SetConfig(cf *config.Config) *Logger {
	n := cf.Clone()

	l.Lock()
	defer l.Unlock()

	l.config = n
	return l
}

func (l *Logger) Config() *config.Config {
	return l.cfg().Clone()
}

func (l *Logger) cfg() *config.Config {
	l.RLock()
	defer l.RUnlock()

	return l.config
}

// Clone copies the fields and the configuration but not the error.
func (l *Logger) Clone() *Logger {
	l.RLock()
	defer l.RUnlock()

	return &Logger{
		fields: l.fields.Clone(),
		config: l.config.Clone(),
	}
}

func (l *Logger) Fields() Fields {
	l.RLock()
	defer l.RUnlock()

	return l.fields.Clone()
}

func (l *Logger) Add(key string, value any) *Logger {
	l.Lock()
	defer l.Unlock()

	l.fields[key] = value
	return l
}

// AddDebug adds the field only when debug entries are written.
func (l *Logger) AddDebug(key string, value any) *Logger {
	if !l.IsDebug() {
		return l
	}

	return l.Add(key, value)
}

func (l *Logger) Merge(m map[string]any) *Logger {
	l.Lock()
	defer l.Unlock()

	l.fields = l.fields.Merge(m)
	return l
}

func (l *Logger) Writer(writer io.Writer) *Logger {
	l.cfg().SetWriter(writer)
	return l
}

func (l *Logger) SetLevel(lvl level.Level) *Logger {
	l.cfg().SetLevel(lvl)
	return l
}

func (l *Logger) Level() level.Level {
	return l.cfg().Level()
}

func (l *Logger) IsDebug() bool {
	return l.cfg().Enabled(level.DebugLevel)
}

// Error attaches err to the next entries. Later errors are prefixed to earlier ones.
func (l *Logger) Error(err error) *Logger {
	if err == nil {
		return l
	}

	l.Lock()
	defer l.Unlock()

	if l.err == nil {
		l.err = err
	} else {
		l.err = errors.Wrap(l.err, err.Error())
	}

	return l
}

func (l *Logger) Err() error {
	l.RLock()
	defer l.RUnlock()

	return l.err
}
