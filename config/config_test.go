package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rskv-p/sltree/config"
	"github.com/rskv-p/sltree/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sltree.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfig_Defaults(t *testing.T) {
	cfg, err := config.New(config.WithDefaults())
	require.NoError(t, err)

	assert.Equal(t, 35, cfg.Terminator)
	assert.Equal(t, byte('#'), cfg.TerminatorByte())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.True(t, cfg.Progress)
	assert.False(t, cfg.Check)
	assert.Equal(t, 64, cfg.SampleRate)
	assert.ErrorIs(t, cfg.Validate(), constant.ErrMissingInput)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeJSON(t, `{"input": "${SLT_TEST_DIR}/a.bwt", "terminator": 36, "sample_rate": 8, "log_level": "warn"}`)
	t.Setenv("SLT_TEST_DIR", "/data")
	t.Setenv("SLT_SAMPLE_RATE", "16")
	t.Setenv("SLT_CHECK", "true")

	cfg, err := config.Load(path, config.WithValue(constant.KeyLogLevel, "debug"))
	require.NoError(t, err)

	assert.Equal(t, "/data/a.bwt", cfg.Input)
	assert.Equal(t, byte('$'), cfg.TerminatorByte())
	assert.Equal(t, 16, cfg.SampleRate, "environment overrides file")
	assert.True(t, cfg.Check)
	assert.Equal(t, "debug", cfg.LogLevel, "explicit values override environment")
	assert.Equal(t, "console", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeJSON(t, `{"input": "env.bwt"}`)
	t.Setenv(constant.EnvConfigPath, path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.bwt", cfg.Input)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = config.Load(writeJSON(t, "{bad json"))
	assert.Error(t, err)

	_, err = config.New(config.WithValue(constant.KeySampleRate, "many"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	base := func(extra ...config.Option) *config.Config {
		opts := append([]config.Option{
			config.WithDefaults(),
			config.WithValue(constant.KeyInput, "in.bwt"),
		}, extra...)
		cfg, err := config.New(opts...)
		require.NoError(t, err)
		return cfg
	}

	assert.NoError(t, base().Validate())

	for _, code := range []int{'A', 'C', 'G', 'N', 'T', 300, -1} {
		err := base(config.WithValue(constant.KeyTerminator, code)).Validate()
		assert.ErrorIs(t, err, constant.ErrInvalidTerminator, "code %d", code)
	}

	err := base(config.WithValue(constant.KeySampleRate, 0)).Validate()
	assert.ErrorIs(t, err, constant.ErrInvalidSampleRate)

	// A bad terminator is reported before a missing input.
	cfg, err := config.New(config.WithDefaults(), config.WithValue(constant.KeyTerminator, 'A'))
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), constant.ErrInvalidTerminator)
}

func TestConfig_String(t *testing.T) {
	cfg, err := config.New(config.WithValue(constant.KeyInput, "value.bwt"))
	require.NoError(t, err)

	assert.Contains(t, cfg.String(), `"input": "value.bwt"`)
	assert.Contains(t, cfg.String(), `"sample_rate": 0`)
}
