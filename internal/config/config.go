// Package config loads search-node settings from a YAML or TOML file
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/UnendingLoop/minigrep/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEnv           = "local"
	DefaultAddress       = ":8080"
	DefaultMaxInputBytes = 8 << 20
)

func Default() *model.NodeConfig {
	return &model.NodeConfig{
		Env:           DefaultEnv,
		Address:       DefaultAddress,
		MaxInputBytes: DefaultMaxInputBytes,
	}
}

// LoadConfig picks the decoder by file extension, unset fields keep their defaults.
func LoadConfig(path string) (*model.NodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %q: %w", path, err)
	}

	if cfg.MaxInputBytes < 0 {
		return nil, fmt.Errorf("max_input_bytes must not be negative, got %d", cfg.MaxInputBytes)
	}
	return cfg, nil
}

// MustLoad reads CONFIG_PATH, defaults are used when it's empty.
func MustLoad() *model.NodeConfig {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		return Default()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
