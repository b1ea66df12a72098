package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"bcryptCost": 12,
			"tokenTTL":   "168h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTTL"},
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

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.BcryptCost(); got != defaultBcryptCost {
		t.Fatalf("BcryptCost() = %d, want %d", got, defaultBcryptCost)
	}
	if got := cfg.TokenTTL(); got != defaultTokenTTL {
		t.Fatalf("TokenTTL() = %s, want %s", got, defaultTokenTTL)
	}

	cfg.Auth = &AuthConfig{BcryptCost: 10, TokenTTL: defaultTokenTTL / 7}
	if got := cfg.BcryptCost(); got != 10 {
		t.Fatalf("BcryptCost() = %d, want 10", got)
	}
	if got := cfg.TokenTTL(); got != defaultTokenTTL/7 {
		t.Fatalf("TokenTTL() = %s, want %s", got, defaultTokenTTL/7)
	}
}
