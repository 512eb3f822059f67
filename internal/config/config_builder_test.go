package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "first-key", Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenSignKey: "second-key", TokenIssuer: "issuer"}},
		&StructuredConfig{
			App:     App{TokenDuration: time.Hour},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			Server:  Server{HTTPAddress: "localhost:9000", RequestTimeout: time.Minute},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "first-key", cfg.App.TokenSignKey)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
}

// TestBuild_ValidationRejectsMissingSignKey verifies that a merged config
// without a token sign key does not pass validation.
func TestBuild_ValidationRejectsMissingSignKey(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}

// TestBuild_ValidationRejectsMissingDSN verifies that a merged config
// without a database DSN does not pass validation.
func TestBuild_ValidationRejectsMissingDSN(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestWithDefaults_FillsOnlyZeroFields verifies that defaults never override
// values supplied by an earlier source.
func TestWithDefaults_FillsOnlyZeroFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "secret", TokenDuration: time.Hour},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "finlearn", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}
