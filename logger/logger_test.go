package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, "debug", "JSON", &buf)

	l.WithField("target", "enemy-1").Debug("attack tick")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "attack tick", line["msg"])
	assert.Equal(t, "enemy-1", line["target"])
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestConfigureBadLevelFallsBackToInfo(t *testing.T) {
	l := logrus.New()
	t.Setenv("LOG_LEVEL", "")
	Configure(l, "loud", "", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestConfigureReadsEnvLevel(t *testing.T) {
	l := logrus.New()
	t.Setenv("LOG_LEVEL", "warn")
	Configure(l, "", "text", &bytes.Buffer{})
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}
