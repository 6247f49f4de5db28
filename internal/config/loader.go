package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "connect4.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.connect4/connect4.yaml -> ./configs/connect4.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func Load(customPath string) (Connect4Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Connect4Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(data, userCfgPath)
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(local); err == nil {
		return parse(data, local)
	}

	return Embedded(), nil
}

// Embedded returns the embedded default configuration.
func Embedded() Connect4Config {
	var cfg Connect4Config
	if err := yaml.Unmarshal(defaultConnect4YAML, &cfg); err != nil {
		return DefaultConnect4Config()
	}
	return cfg
}

func parse(data []byte, source string) (Connect4Config, error) {
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Connect4Config{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Connect4Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".connect4", filename)
}

// DataDir returns ~/.connect4, the home of the database and screenshots.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".connect4"
	}
	return filepath.Join(home, ".connect4")
}
