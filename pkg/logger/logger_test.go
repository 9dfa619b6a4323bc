package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput(&buf, "debug", "json")

	log.Info("document ingested", "session_id", "abc", "pages", 3)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "document ingested", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "abc", line["session_id"])
	assert.EqualValues(t, 3, line["pages"])
}

func TestLogger_ErrorCarriesCause(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput(&buf, "info", "json")

	log.Error("ask failed", errors.New("upstream 503"))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "upstream 503", line["error"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithOutput(&buf, "warn", "text")

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown", "dangling")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
	assert.NotContains(t, out, "dangling")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLogLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, parseLogLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, logrus.InfoLevel, parseLogLevel("nonsense"))
}
