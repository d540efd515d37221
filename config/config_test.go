package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "train_reminders.db", cfg.Database.SQLite.Path)
	assert.Equal(t, 5*time.Second, cfg.Database.SQLite.BusyTimeout)
	assert.NoError(t, cfg.validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "cron scheduler", mutate: func(c *Config) { c.Alarm.Provider = "cron" }},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "unknown database driver"},
		{name: "postgres without connection", mutate: func(c *Config) { c.Database.Driver = "postgres" }, wantErr: "database.postgres"},
		{
			name: "postgres with connection",
			mutate: func(c *Config) {
				c.Database.Driver = "postgres"
				c.Database.Postgres = &postgres.DBConn{}
			},
		},
		{name: "unknown alarm provider", mutate: func(c *Config) { c.Alarm.Provider = "alarmmanager" }, wantErr: "unknown alarm provider"},
		{name: "pubsub without topic", mutate: func(c *Config) { c.Alarm.Provider = "pubsub"; c.Alarm.ProjectID = "p" }, wantErr: "alarm.topicId"},
		{name: "webhook without endpoint", mutate: func(c *Config) { c.Alarm.Provider = "webhook" }, wantErr: "alarm.webhookEndpoint"},
		{name: "firebase without tokens", mutate: func(c *Config) { c.Notification.Provider = "firebase" }, wantErr: "deviceTokens"},
		{name: "unknown notifier", mutate: func(c *Config) { c.Notification.Provider = "sms" }, wantErr: "unknown notification provider"},
		{name: "production without callback token", mutate: func(c *Config) { c.Env.Env = "production" }, wantErr: "alarm.callbackToken"},
		{
			name: "production with callback token",
			mutate: func(c *Config) {
				c.Env.Env = "production"
				c.Alarm.CallbackToken = "s3cret"
			},
		},
		{name: "develop without callback token", mutate: func(c *Config) { c.Env.Env = "develop" }},
		{name: "bad timezone", mutate: func(c *Config) { c.App.Timezone = "Mars/Olympus" }, wantErr: "load timezone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := validConfig()

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.App.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	cfg.App.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, loadDotEnv(filepath.Join(dir, ".env")), "a missing file is skipped")

	good := filepath.Join(dir, "good.env")
	require.NoError(t, os.WriteFile(good, []byte("TRAINBOOK_DOTENV_VALUE=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TRAINBOOK_DOTENV_VALUE") })
	require.NoError(t, loadDotEnv(good))
	assert.Equal(t, "loaded", os.Getenv("TRAINBOOK_DOTENV_VALUE"))

	bad := filepath.Join(dir, "bad.env")
	require.NoError(t, os.WriteFile(bad, []byte("BAD-KEY=value\n"), 0o600))
	assert.ErrorContains(t, loadDotEnv(bad), "bad.env")
}
