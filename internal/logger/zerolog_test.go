package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("nonsense"))
}

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("simulation", "run started", map[string]interface{}{"run_id": "abc"})
	out := buf.String()
	assert.Contains(t, out, `"component":"simulation"`)
	assert.Contains(t, out, `"run_id":"abc"`)
	assert.Contains(t, out, "run started")
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("gui", "ignored", nil)
	log.Info("gui", "ignored too", nil)
	assert.Empty(t, buf.String())

	log.Error("gui", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), "boom")
}
