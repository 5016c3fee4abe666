package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SERVER_HOST", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
}

func TestConfigFromEnv_BadPort(t *testing.T) {
	// A malformed port is fatal: no config, no listener.
	cases := []string{"abc", "-1", "8000x", "70000", "1.5"}
	for _, raw := range cases {
		t.Setenv("SERVER_PORT", raw)

		cfg, err := ConfigFromEnv()
		assert.Error(t, err, "SERVER_PORT=%q should fail", raw)
		assert.Nil(t, cfg)
	}
}
