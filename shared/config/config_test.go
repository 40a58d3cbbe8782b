package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Empty(t, cfg.SeedFile)
	assert.Equal(t, defaultSeedPath, cfg.SeedGithubPath)
	assert.Equal(t, defaultTrendingLimit, cfg.TrendingLimit)
	assert.Equal(t, defaultUserID, cfg.UserID)
	assert.Equal(t, defaultUserName, cfg.UserName)
	assert.False(t, cfg.UsesGithubSeed())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAWFEED_PORT", "9090")
	t.Setenv("PAWFEED_LOG_LEVEL", "debug")
	t.Setenv("PAWFEED_LOG_PRETTY", "true")
	t.Setenv("PAWFEED_SEED_GITHUB_OWNER", "dfryer1193")
	t.Setenv("PAWFEED_SEED_GITHUB_REPO", "pawfeed-seed")
	t.Setenv("PAWFEED_TRENDING_LIMIT", "10")
	t.Setenv("PAWFEED_USER_NAME", "Alice")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.True(t, cfg.UsesGithubSeed())
	assert.Equal(t, 10, cfg.TrendingLimit)
	assert.Equal(t, "Alice", cfg.UserName)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PAWFEED_PORT", "not-a-port")
	t.Setenv("PAWFEED_LOG_PRETTY", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port out of range", env: map[string]string{"PAWFEED_PORT": "70000"}},
		{name: "unknown log level", env: map[string]string{"PAWFEED_LOG_LEVEL": "chatty"}},
		{name: "github owner without repo", env: map[string]string{"PAWFEED_SEED_GITHUB_OWNER": "dfryer1193"}},
		{name: "zero trending limit", env: map[string]string{"PAWFEED_TRENDING_LIMIT": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
