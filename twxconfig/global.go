// Package twxconfig loads and persists twx account configuration.
package twxconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Account is one set of credentials in the global config.
type Account struct {
	BaseURL     string `yaml:"base_url,omitempty"`
	BearerToken string `yaml:"bearer_token"`
	ScreenName  string `yaml:"screen_name,omitempty"`
}

// GlobalConfig is the contents of config.yaml.
type GlobalConfig struct {
	Accounts       map[string]Account `yaml:"accounts"`
	DefaultAccount string             `yaml:"default_account,omitempty"`
}

// DefaultGlobalConfigPath returns $TWX_CONFIG_PATH when set, otherwise
// config.yaml under the user config dir.
func DefaultGlobalConfigPath() (string, error) {
	env, err := LoadEnv()
	if err != nil {
		return "", err
	}
	if env.ConfigPath != "" {
		return env.ConfigPath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "twx", "config.yaml"), nil
}

// LoadGlobal reads the config at DefaultGlobalConfigPath.
func LoadGlobal() (*GlobalConfig, error) {
	path, err := DefaultGlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadGlobalFrom(path)
}

// LoadGlobalFrom reads a config file. A missing file yields an empty config
// with initialized maps.
func LoadGlobalFrom(path string) (*GlobalConfig, error) {
	cfg := &GlobalConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Accounts == nil {
		cfg.Accounts = map[string]Account{}
	}
	return cfg, nil
}

// SaveGlobalTo writes the config atomically with 0600 permissions.
func (c *GlobalConfig) SaveGlobalTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := atomicWriteFile(path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// UpdateGlobalAt loads the config at path, applies fn and saves the result.
// Nothing is written when fn returns an error.
func UpdateGlobalAt(path string, fn func(cfg *GlobalConfig) error) error {
	cfg, err := LoadGlobalFrom(path)
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return cfg.SaveGlobalTo(path)
}
