package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ServerConfig configures the SSH server. Values come from the environment
// and are overridden by explicit command-line flags.
type ServerConfig struct {
	Address     string        `env:"CONNECT4_SSH_ADDR" env-default:":23234" env-description:"SSH listen address"`
	HostKeyPath string        `env:"CONNECT4_HOST_KEY" env-description:"Path to the SSH host key (generated when empty)"`
	DBPath      string        `env:"CONNECT4_DB" env-description:"Path to the standings database"`
	IdleTimeout time.Duration `env:"CONNECT4_IDLE_TIMEOUT" env-default:"30m" env-description:"Disconnect idle sessions after this long"`
	MaxTimeout  time.Duration `env:"CONNECT4_MAX_TIMEOUT" env-default:"4h" env-description:"Hard limit on session length"`
}

// LoadServerConfig reads the server configuration from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config: read server env: %w", err)
	}
	return cfg, nil
}

// ServerUsage describes the environment variables ServerConfig reads.
func ServerUsage() string {
	var cfg ServerConfig
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return desc
}
