package level

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, l := range AllLevels {
		got, err := Parse(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	data := map[string]Level{
		"WARN":    WarnLevel,
		" Info ":  InfoLevel,
		"warning": WarnLevel,
	}

	for in, want := range data {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("loud")
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestString(t *testing.T) {
	assert.Equal(t, "panic", PanicLevel.String())
	assert.Equal(t, "trace", TraceLevel.String())
	assert.Equal(t, "unknown", Level(42).String())
	assert.Equal(t, "unknown", Level(-1).String())
}

func TestFlagValue(t *testing.T) {
	var l Level
	require.NoError(t, l.Set("debug"))
	assert.Equal(t, DebugLevel, l)
	assert.Equal(t, "level", l.Type())

	assert.Error(t, l.Set("nope"))
	assert.Equal(t, DebugLevel, l)

	b, err := ErrorLevel.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "error", string(b))

	_, err = Level(9).MarshalText()
	assert.Error(t, err)
}
