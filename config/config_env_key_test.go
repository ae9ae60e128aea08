package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"path":            "data/users.csv",
			"serializeWrites": false,
		},
		"session": map[string]any{
			"cookieName": "cinematch_session",
		},
		"llm": map[string]any{
			"apiKey": "",
			"breaker": map[string]any{
				"failureThreshold": 5,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_PATH", want: "store.path"},
		{envKey: "STORE_SERIALIZEWRITES", want: "store.serializeWrites"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "LLM_APIKEY", want: "llm.apiKey"},
		{envKey: "LLM_BREAKER_FAILURETHRESHOLD", want: "llm.breaker.failureThreshold"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultStorePath, cfg.Store.Path)
	assert.Equal(t, defaultCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionMaxAge, cfg.Session.MaxAge)
	assert.Equal(t, SessionModePlain, cfg.Session.Mode)
	assert.Equal(t, PasswordSchemePlain, cfg.Auth.PasswordScheme)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, 3, cfg.Recommendation.Count)
	assert.Equal(t, 3, cfg.Recommendation.LocalMax)
	assert.Equal(t, "barcelona", cfg.Listings.DefaultCity)
}

func TestApplyDefaults_RejectsBadModes(t *testing.T) {
	cfg := &Config{}
	cfg.Session.Mode = SessionModeJWT
	assert.Error(t, cfg.applyDefaults(), "jwt sessions need a secret")

	cfg = &Config{}
	cfg.Session.Mode = "cookie-jar"
	assert.Error(t, cfg.applyDefaults())

	cfg = &Config{}
	cfg.Auth.PasswordScheme = "md5"
	assert.Error(t, cfg.applyDefaults())
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, "config.yaml", "store:\n  path: data/users.csv\nhttp:\n  port: 8080\n")
	t.Setenv("STORE_PATH", "/var/lib/cinematch/users.csv")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/cinematch/users.csv", cfg.Store.Path)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))
}
