package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("NEO4J_URI", "")
	t.Setenv("NEO4J_USER", "")
	t.Setenv("NEO4J_PASSWORD", "")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "bolt://localhost:7687", cfg.Database.URI)
	assert.Equal(t, "neo4j", cfg.Database.Database)
	assert.Equal(t, "gpt-4o-mini", cfg.NLP.Model)
	assert.Equal(t, "./uploads", cfg.Ingest.UploadsDir)
	assert.True(t, cfg.CircuitBreaker.Enabled)
	assert.InDelta(t, 0.6, cfg.CircuitBreaker.ReadyToTripRatio, 1e-9)
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("NEO4J_URI", "neo4j://db.internal:7687")
	t.Setenv("NEO4J_USER", "graph")
	t.Setenv("NEO4J_PASSWORD", "secret")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "neo4j://db.internal:7687", cfg.Database.URI)
	assert.Equal(t, "graph", cfg.Database.Username)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "sk-test", cfg.NLP.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadIgnoresBadPortEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Server.Port)
}
