package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("nonsense"))
}

func TestLogger_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	l := New(logrus.NewEntry(base))
	l.Error("workout purge failed", map[string]any{"user_id": "u-1", "count": 3})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "workout purge failed", line["msg"])
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "u-1", line["user_id"])
	assert.EqualValues(t, 3, line["count"])
}

func TestSentryHook_Levels(t *testing.T) {
	h := NewSentryHook(logrus.ErrorLevel)
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, h.Levels())
	require.NoError(t, h.Fire(logrus.NewEntry(logrus.New()).WithField("k", "v")))
}
