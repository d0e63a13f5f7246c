package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "gloambot")
	t.Setenv("API_KEY", "test-key")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app-id")
	t.Setenv("DISCORD_PUBLIC_KEY", "pub-key")
}

func TestValidateEnv(t *testing.T) {
	t.Run("passes with all required vars", func(t *testing.T) {
		setRequiredEnv(t)
		assert.NoError(t, ValidateEnv())
	})

	t.Run("fails without schema version", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENV_SCHEMA_VERSION", "")
		os.Unsetenv("ENV_SCHEMA_VERSION")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION")
	})

	t.Run("fails on schema version mismatch", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("ENV_SCHEMA_VERSION", "0.9")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mismatch")
	})

	t.Run("reports missing variables by name", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("DISCORD_TOKEN", "")
		os.Unsetenv("DISCORD_TOKEN")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DISCORD_TOKEN")
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "API_KEY")
}
