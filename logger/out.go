package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/iostrovok/trimothy/logger/config"
	"github.com/iostrovok/trimothy/logger/level"
)

var now = time.Now

// Log writes one entry at lvl with msg as its message.
func (l *Logger) Log(lvl level.Level, msg string) {
	cf := l.cfg()
	if !cf.Enabled(lvl) {
		return
	}

	l.RLock()
	entry := l.fields.Clone()
	err := l.err
	l.RUnlock()

	entry[cf.Key(config.TimestampField)] = now().Format(cf.TimeFormat())
	entry[cf.Key(config.LevelField)] = lvl.String()
	entry[cf.Key(config.MessageField)] = msg
	if err != nil {
		entry[cf.Key(config.ErrorMessageField)] = err.Error()
	}

	if _, werr := cf.Writer().Write(entry.JSON()); werr != nil {
		fmt.Fprintln(os.Stderr, werr.Error())
	}
}

func (l *Logger) Logf(lvl level.Level, format string, data ...any) {
	if !l.cfg().Enabled(lvl) {
		return
	}

	l.Log(lvl, fmt.Sprintf(format, data...))
}

func (l *Logger) Tracef(format string, data ...any) {
	l.Logf(level.TraceLevel, format, data...)
}

func (l *Logger) Debugf(format string, data ...any) {
	l.Logf(level.DebugLevel, format, data...)
}

func (l *Logger) Infof(format string, data ...any) {
	l.Logf(level.InfoLevel, format, data...)
}

func (l *Logger) Printf(format string, data ...any) {
	l.Logf(level.InfoLevel, format, data...)
}

func (l *Logger) Warnf(format string, data ...any) {
	l.Logf(level.WarnLevel, format, data...)
}

func (l *Logger) Errorf(format string, data ...any) {
	l.Logf(level.ErrorLevel, format, data...)
}

// Fatalf logs and exits with status 1.
func (l *Logger) Fatalf(format string, data ...any) {
	l.Logf(level.FatalLevel, format, data...)
	os.Exit(1)
}

// Panicf logs and panics with the formatted message.
func (l *Logger) Panicf(format string, data ...any) {
	msg := fmt.Sprintf(format, data...)
	l.Log(level.PanicLevel, msg)
	panic(msg)
}
