package logger

import (
	"bytes"
	"encoding/json"
	"fitmanager/routine-service/internal/config"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(config.LogConfig{Level: "debug", Format: "json"}, &buf)

	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	log.WithField("routine_id", "abc").Info("Routine created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Routine created", entry["msg"])
	assert.Equal(t, "abc", entry["routine_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput(config.LogConfig{Level: "loud", Format: "text"}, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	_, isText := log.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}
