package pinecone

import (
	"errors"
	"os"
)

// EnvIndexName is the environment variable consulted for the index name when
// none is configured explicitly.
const EnvIndexName = "PINECONE_INGEST_INDEX_NAME"

// Index parameters for on-demand provisioning. Fixed: every chunkdex index
// holds 1536-dimensional ada-002 embeddings under cosine similarity.
const (
	Dimension = 1536
	Cloud     = "aws"
	Region    = "us-west-2"
)

// Config holds connection settings for a Pinecone index.
type Config struct {
	// IndexName is the Pinecone index to write to. When empty it is read
	// from the PINECONE_INGEST_INDEX_NAME environment variable.
	IndexName string

	// APIKey is the Pinecone API key. When empty the SDK falls back to the
	// PINECONE_API_KEY environment variable.
	APIKey string

	// Namespace is the index namespace to operate in. Empty selects the
	// default namespace.
	Namespace string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithIndexName sets the index name.
func WithIndexName(name string) ConfigOption {
	return func(c *Config) {
		c.IndexName = name
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithNamespace sets the namespace.
func WithNamespace(ns string) ConfigOption {
	return func(c *Config) {
		c.Namespace = ns
	}
}

// NewConfig creates a Config and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate resolves the index name from the environment if unset and checks
// that the configuration is complete.
func (c *Config) Validate() error {
	if c.IndexName == "" {
		c.IndexName = os.Getenv(EnvIndexName)
	}
	if c.IndexName == "" {
		return errors.New("pinecone config: IndexName is required (set " + EnvIndexName + ")")
	}
	return nil
}
