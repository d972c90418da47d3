package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelFor(0))
	assert.Equal(t, zerolog.InfoLevel, LevelFor(1))
	assert.Equal(t, zerolog.DebugLevel, LevelFor(2))
	assert.Equal(t, zerolog.TraceLevel, LevelFor(5))
}

func TestGetLoggerAddsComponent(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	var buf bytes.Buffer
	SetupLogger(&buf, 1, true)
	GetLogger("driver").Info().Str("path", "a.json").Msg("formatted")
	GetLogger("driver").Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "component=driver")
	assert.Contains(t, out, "formatted")
	assert.NotContains(t, out, "hidden")
}
