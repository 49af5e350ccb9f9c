// file: sltree/config/option.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rskv-p/sltree/constant"
)

// Option is a functional config initializer.
type Option func(*Config) error

// normalizeKey accepts flag spelling (log-level) as well as config keys.
func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}

func isKnownKey(key string) bool {
	_, ok := Defaults()[key]
	return ok
}

// set stores v under key. A terminator may be written as the character
// itself ("$") as well as its byte code.
func (c *Config) set(key string, v any) {
	if s, ok := v.(string); ok && key == constant.KeyTerminator {
		if code, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			v = code
		} else if len(s) == 1 {
			v = int(s[0])
		}
	}
	c.values[key] = v
}

// WithDefaults seeds every key with its built-in value.
func WithDefaults() Option {
	return func(c *Config) error {
		for k, v := range Defaults() {
			c.set(k, v)
		}
		return nil
	}
}

// WithValue sets a single key, overriding earlier sources.
func WithValue(key string, value any) Option {
	return func(c *Config) error {
		key = normalizeKey(key)
		if !isKnownKey(key) {
			return fmt.Errorf("%w: %q", constant.ErrUnknownConfigKey, key)
		}
		c.set(key, value)
		return nil
	}
}

// FromJSON loads a JSON object of run settings. ${VAR} references are
// expanded from the environment first, and unknown keys are rejected.
func FromJSON(path string) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		data = []byte(os.ExpandEnv(string(data)))

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse config json: %w", err)
		}
		for k, v := range raw {
			key := normalizeKey(k)
			if !isKnownKey(key) {
				return fmt.Errorf("%s: %w: %q", path, constant.ErrUnknownConfigKey, k)
			}
			c.set(key, v)
		}
		return nil
	}
}

// FromEnv reads PREFIX<KEY> variables for the known keys. The variable
// naming the config file and any other PREFIX variable are left alone.
func FromEnv(prefix string) Option {
	return func(c *Config) error {
		for _, e := range os.Environ() {
			name, value, ok := strings.Cut(e, "=")
			if !ok || !strings.HasPrefix(name, prefix) || name == constant.EnvConfigPath {
				continue
			}
			key := normalizeKey(strings.TrimPrefix(name, prefix))
			if !isKnownKey(key) {
				continue
			}
			c.set(key, parseEnvValue(value))
		}
		return nil
	}
}

// parseEnvValue interprets "true", "false" and integers. Anything else
// stays a string for the decoder.
func parseEnvValue(v string) any {
	v = strings.TrimSpace(v)
	switch {
	case strings.EqualFold(v, "true"):
		return true
	case strings.EqualFold(v, "false"):
		return false
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return v
}
