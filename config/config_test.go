package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	t.Setenv(tokenSecretAlias, "")

	cfg := &Config{}
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, StoreDriverDocument, cfg.Store.Driver)
	assert.Equal(t, "app.db.json", cfg.Store.Document.Key)
	assert.Equal(t, devTokenSecret, cfg.SecretKey.Token)
	assert.True(t, cfg.SecretKey.Fallback)
}

func TestApplyDefaults_ProductionRequiresSecret(t *testing.T) {
	t.Setenv(tokenSecretAlias, "")

	cfg := &Config{}
	cfg.Env.Env = "Production"

	err := cfg.applyDefaults()
	assert.ErrorIs(t, err, ErrMissingTokenSecret)
}

func TestApplyDefaults_SecretAlias(t *testing.T) {
	t.Setenv(tokenSecretAlias, " from-env ")

	cfg := &Config{}
	cfg.Env.Env = EnvProduction
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "from-env", cfg.SecretKey.Token)
	assert.False(t, cfg.SecretKey.Fallback)
}

func TestApplyDefaults_ConfiguredSecretWins(t *testing.T) {
	t.Setenv(tokenSecretAlias, "from-env")

	cfg := &Config{SecretKey: SecretKeyConfig{Token: "from-file"}}
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "from-file", cfg.SecretKey.Token)
}

func TestApplyDefaults_StoreDriver(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Driver: " SQLite "}}
	require.NoError(t, cfg.applyDefaults())
	assert.Equal(t, StoreDriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "./data/app.db", cfg.Store.SQLite.Path)

	cfg = &Config{Store: StoreConfig{Driver: "postgres"}}
	assert.Error(t, cfg.applyDefaults())

	cfg = &Config{Store: StoreConfig{Driver: "mongo"}}
	assert.Error(t, cfg.applyDefaults())
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("AUTH_BCRYPTCOST", "4")
	t.Setenv("SECRETKEY_TOKEN", "env-secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "env-secret", cfg.SecretKey.Token)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}
