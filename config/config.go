// file: sltree/config/config.go
package config

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/rskv-p/sltree/constant"
)

// Config holds the settings of one analysis run.
type Config struct {
	Input      string `mapstructure:"input" json:"input"`
	Terminator int    `mapstructure:"terminator" json:"terminator"`
	LogLevel   string `mapstructure:"log_level" json:"log_level"`
	LogFormat  string `mapstructure:"log_format" json:"log_format"`
	LogFile    string `mapstructure:"log_file" json:"log_file"`
	Progress   bool   `mapstructure:"progress" json:"progress"`
	SampleRate int    `mapstructure:"sample_rate" json:"sample_rate"`
	Check      bool   `mapstructure:"check" json:"check"`

	values map[string]any
}

// Defaults returns the built-in values of every key.
func Defaults() map[string]any {
	return map[string]any{
		constant.KeyInput:      "",
		constant.KeyTerminator: constant.DefaultTerminator,
		constant.KeyLogLevel:   constant.DefaultLogLevel,
		constant.KeyLogFormat:  constant.DefaultLogFormat,
		constant.KeyLogFile:    "",
		constant.KeyProgress:   true,
		constant.KeySampleRate: constant.DefaultSampleRate,
		constant.KeyCheck:      false,
	}
}

// New applies opts in order and decodes the collected values.
func New(opts ...Option) (*Config, error) {
	c := &Config{values: map[string]any{}}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(c.values); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Load layers defaults, the JSON file at path (or $SLT_CONFIG), SLT_
// environment variables and then extra.
func Load(path string, extra ...Option) (*Config, error) {
	opts := []Option{WithDefaults()}
	if path == "" {
		path = GetEnvStr(constant.EnvConfigPath, "")
	}
	if path != "" {
		opts = append(opts, FromJSON(path))
	}
	opts = append(opts, FromEnv(constant.EnvPrefix))
	opts = append(opts, extra...)
	return New(opts...)
}

// TerminatorByte is the terminator as a BWT byte.
func (c *Config) TerminatorByte() byte {
	return byte(c.Terminator)
}

// Validate checks the run settings before any file is read.
func (c *Config) Validate() error {
	if c.Terminator < 0 || c.Terminator > 255 {
		return fmt.Errorf("%w: code %d", constant.ErrInvalidTerminator, c.Terminator)
	}
	if constant.IsDNASymbol(c.TerminatorByte()) {
		return fmt.Errorf("%w: '%c'", constant.ErrInvalidTerminator, c.TerminatorByte())
	}
	if c.Input == "" {
		return constant.ErrMissingInput
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", constant.ErrInvalidSampleRate, c.SampleRate)
	}
	return nil
}

// String renders the resolved settings as indented JSON.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

