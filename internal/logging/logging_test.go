package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hance08/keasec/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, setup(config.LogConfig{Level: "info", Format: "json"}, &buf))
	t.Cleanup(func() { _ = setup(config.LogConfig{}, &bytes.Buffer{}) })

	logrus.WithField("op", "Merge").Info("dier removed")
	logrus.Debug("not shown")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Merge", entry["op"])
	assert.Equal(t, "dier removed", entry["msg"])
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetupRejectsUnknownValues(t *testing.T) {
	assert.Error(t, setup(config.LogConfig{Level: "loud"}, &bytes.Buffer{}))
	assert.Error(t, setup(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{}))
}
