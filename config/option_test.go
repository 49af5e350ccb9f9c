package config_test

import (
	"testing"

	"github.com/rskv-p/sltree/config"
	"github.com/rskv-p/sltree/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("SRV_TEST_CHECK", "TRUE")
	t.Setenv("SRV_TEST_SAMPLE_RATE", " 16 ")
	t.Setenv("SRV_TEST_LOG_LEVEL", "warn")
	t.Setenv("SRV_TEST_UNRELATED", "ignored")

	cfg, err := config.New(config.WithDefaults(), config.FromEnv("SRV_TEST_"))
	require.NoError(t, err)

	assert.True(t, cfg.Check)
	assert.Equal(t, 16, cfg.SampleRate)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFromEnv_SkipsConfigPath(t *testing.T) {
	t.Setenv(constant.EnvConfigPath, "/etc/sltree.json")
	t.Setenv("SLT_INPUT", "from-env.bwt")

	cfg, err := config.New(config.FromEnv(constant.EnvPrefix))
	require.NoError(t, err)
	assert.Equal(t, "from-env.bwt", cfg.Input)
	assert.NotContains(t, cfg.String(), "/etc/sltree.json")
}

func TestTerminatorAsCharacter(t *testing.T) {
	t.Setenv("SLT_TERMINATOR", "$")
	cfg, err := config.New(config.WithDefaults(), config.FromEnv(constant.EnvPrefix))
	require.NoError(t, err)
	assert.Equal(t, byte('$'), cfg.TerminatorByte())

	cfg, err = config.New(config.WithDefaults(), config.WithValue("terminator", "36"))
	require.NoError(t, err)
	assert.Equal(t, 36, cfg.Terminator)

	cfg, err = config.New(config.FromJSON(writeJSON(t, `{"terminator": "@"}`)))
	require.NoError(t, err)
	assert.Equal(t, int('@'), cfg.Terminator)
}

func TestWithValue_Keys(t *testing.T) {
	cfg, err := config.New(config.WithDefaults(), config.WithValue("Log-Format", "json"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)

	_, err = config.New(config.WithValue("colour", "blue"))
	assert.ErrorIs(t, err, constant.ErrUnknownConfigKey)
}

func TestFromJSON_RejectsUnknownKeys(t *testing.T) {
	path := writeJSON(t, `{"input": "a.bwt", "sampel_rate": 8}`)
	_, err := config.New(config.FromJSON(path))
	assert.ErrorIs(t, err, constant.ErrUnknownConfigKey)
	assert.Contains(t, err.Error(), "sampel_rate")
}
