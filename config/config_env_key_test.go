package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"signing": "",
		},
		"auth": map[string]any{
			"sessionTTL": "30m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_SIGNING", want: "secretKey.signing"},
		{envKey: "AUTH_SESSIONTTL", want: "auth.sessionTTL"},
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

func TestConfig_TokenTTLDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.SessionTTL(); got != DefaultSessionTTL {
		t.Fatalf("SessionTTL() = %v, want %v", got, DefaultSessionTTL)
	}
	if got := cfg.VerificationTTL(); got != DefaultVerificationTTL {
		t.Fatalf("VerificationTTL() = %v, want %v", got, DefaultVerificationTTL)
	}
	if got := cfg.ResetTTL(); got != DefaultResetTTL {
		t.Fatalf("ResetTTL() = %v, want %v", got, DefaultResetTTL)
	}

	cfg.Auth = &AuthConfig{SessionTTL: time.Hour}
	if got := cfg.SessionTTL(); got != time.Hour {
		t.Fatalf("SessionTTL() = %v, want %v", got, time.Hour)
	}
}
