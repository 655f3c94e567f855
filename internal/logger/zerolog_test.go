package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("segment", "low pass done", map[string]interface{}{"live": 42})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "segment", entry["component"])
	assert.Equal(t, "low pass done", entry["message"])
	assert.EqualValues(t, 42, entry["live"])
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel)

	log.Debug("segment", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Error("decode", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), "boom")
}

func TestNopDiscards(t *testing.T) {
	var l Logger = Nop()
	l.Warning("x", "y", map[string]interface{}{"a": 1})
}
