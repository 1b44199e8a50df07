package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// ServerConfig configures the SSH front end. Every field can come from a
// YAML file and be overridden by its environment variable.
type ServerConfig struct {
	Addr        string        `yaml:"addr" env:"TETRIS_SSH_ADDR" env-default:":2222"`
	HostKeyPath string        `yaml:"host_key" env:"TETRIS_HOST_KEY" env-default:".ssh/tetris_ed25519"`
	DBPath      string        `yaml:"db" env:"TETRIS_DB"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"TETRIS_IDLE_TIMEOUT" env-default:"10m"`
}

// LoadServer reads the server configuration from path, or from the
// environment alone when path is empty.
func LoadServer(path string) (ServerConfig, error) {
	var cfg ServerConfig
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to read server env: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load server config %s: %w", path, err)
	}
	return cfg, nil
}
