package pinecone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	t.Run("explicit index name", func(t *testing.T) {
		cfg := NewConfig(WithIndexName("my-index"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "my-index", cfg.IndexName)
	})

	t.Run("index name from environment", func(t *testing.T) {
		t.Setenv(EnvIndexName, "env-index")
		cfg := NewConfig()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "env-index", cfg.IndexName)
	})

	t.Run("explicit name wins over environment", func(t *testing.T) {
		t.Setenv(EnvIndexName, "env-index")
		cfg := NewConfig(WithIndexName("explicit"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "explicit", cfg.IndexName)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		t.Setenv(EnvIndexName, "")
		cfg := NewConfig()
		require.Error(t, cfg.Validate())
	})
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithIndexName("idx"),
		WithAPIKey("key"),
		WithNamespace("ns"),
	)

	assert.Equal(t, "idx", cfg.IndexName)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "ns", cfg.Namespace)
}
