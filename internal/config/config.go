// Package config loads the optional ~/.levelup.yaml runtime configuration.
// Every field has a working default, so a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	// DataDir holds the JSON documents for the file backend.
	DataDir string `yaml:"data_dir"`
	// Backend selects the store: "file" (default) or "sqlite".
	Backend string `yaml:"backend"`
	// DBPath is the SQLite database path for the sqlite backend.
	DBPath string `yaml:"db_path"`
	// ResetPIN gates the destructive reset command.
	ResetPIN string `yaml:"reset_pin"`
	// RewardCredit is the amount credited per claimed reward, as a
	// decimal string ("50").
	RewardCredit string `yaml:"reward_credit"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Backend: BackendFile,
		DBPath:  "data/levelup.db",
	}
}

// DefaultPath returns the expected config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".levelup.yaml"), nil
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. Set fields override defaults; unset fields keep them.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}
	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return nil, fmt.Errorf("config %s: unknown backend %q", path, cfg.Backend)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "levelup.db")
	}
	return cfg, nil
}
