package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"baxpro/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for input, want := range tests {
		got, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "baxpro"
	cfg.Env.Log.Level = "info"

	buf := &bytes.Buffer{}
	logger, err := newLogger(cfg, buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("recomputed", slog.Int("matched", 3))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "recomputed", line["msg"])
	assert.Equal(t, "baxpro", line["service"])
	assert.InDelta(t, 3, line["matched"], 0)
}

func TestNewLogger_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = "debug"

	buf := &bytes.Buffer{}
	logger, err := newLogger(cfg, buf)
	require.NoError(t, err)

	logger.Debug("queued", slog.String("alertID", "a1"))
	assert.Contains(t, buf.String(), "msg=queued")
	assert.Contains(t, buf.String(), "alertID=a1")
}
