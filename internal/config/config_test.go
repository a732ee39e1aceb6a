package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frauddesk/fraud-mcp/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.False(t, cfg.ReadOnly)
	assert.Equal(t, "fraud-records", cfg.DynamoDB.Table)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FRAUD_STORE", "neo4j")
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "secret")
	t.Setenv("FRAUD_READ_ONLY", "true")
	t.Setenv("LLM_TIMEOUT", "45s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreNeo4j, cfg.Store)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, "neo4j://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("FRAUD_STORE", "postgres")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadNeo4jRequiresURI(t *testing.T) {
	t.Setenv("FRAUD_STORE", "neo4j")
	t.Setenv("NEO4J_URI", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")

	_, err := config.Load()
	require.Error(t, err)
}
