package appconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	assert.Equal(t, Production, EnvFlagToEnvironment("production"))
	assert.Equal(t, Staging, EnvFlagToEnvironment("staging"))
	assert.Equal(t, Test, EnvFlagToEnvironment("test"))
	assert.Equal(t, Development, EnvFlagToEnvironment("development"))
	assert.Equal(t, Development, EnvFlagToEnvironment("bogus"))
}

func TestEnvironmentString(t *testing.T) {
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "development", Development.String())
}

func TestApplyFileOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "port = 9000\nenv = \"production\"\napi_keys = [\"alpha\", \"beta\"]\nverbose = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg := Config{
		Port:      4000,
		Env:       Development,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
		DataDir:   "./data",
	}
	require.NoError(t, ApplyFile(&cfg, path))

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, Production, cfg.Env)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.ApiKeys)
	assert.True(t, cfg.Verbose)

	// Keys the file does not set keep their flag values.
	assert.Equal(t, 100, cfg.RateLimit)
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestApplyFileMissingFileIsAnError(t *testing.T) {
	cfg := Config{}
	assert.Error(t, ApplyFile(&cfg, filepath.Join(t.TempDir(), "absent.toml")))
}
