package config

import (
	"testing"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"driver": "sqlite",
			"sqlite": map[string]any{
				"busyTimeout": "5s",
			},
		},
		"alarm": map[string]any{
			"webhookEndpoint": "",
		},
		"app": map[string]any{
			"restoreOnBoot": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_DRIVER", want: "database.driver"},
		{envKey: "DATABASE_SQLITE_BUSYTIMEOUT", want: "database.sqlite.busyTimeout"},
		{envKey: "ALARM_WEBHOOKENDPOINT", want: "alarm.webhookEndpoint"},
		{envKey: "APP_RESTOREONBOOT", want: "app.restoreOnBoot"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
