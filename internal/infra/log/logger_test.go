package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"trainbook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONWithServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "trainbook"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("Reminder created", slog.Int64("alarm_id", 1000))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Reminder created", record["msg"])
	assert.Equal(t, "trainbook", record["service"])
	assert.Equal(t, "develop", record["env"])
	assert.EqualValues(t, 1000, record["alarm_id"])
}

func TestNewLogger_DebugOverridesLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true
	cfg.Env.Log.Level = "error"
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
