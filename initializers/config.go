package initializers

import (
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds server tuning loaded from an optional YAML file.
// Environment variables take precedence over the file; the file takes
// precedence over the built-in defaults.
type ServerConfig struct {
	Port                string `yaml:"port"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout"`
	WriteTimeoutSeconds int    `yaml:"write_timeout"`
	ShutdownSeconds     int    `yaml:"shutdown_timeout"`
}

func defaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:                "3000",
		ReadTimeoutSeconds:  10,
		WriteTimeoutSeconds: 10,
		ShutdownSeconds:     15,
	}
}

// LoadServerConfig reads config/app.yaml (path overridable via APP_CONFIG) and
// applies the PORT env var on top. A missing file is not an error.
func LoadServerConfig() (ServerConfig, error) {
	cfg := defaultServerConfig()

	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config/app.yaml"
	}
	data, err := os.ReadFile(path)
	if err == nil {
		var fileCfg ServerConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, err
		}
		if fileCfg.Port != "" {
			cfg.Port = fileCfg.Port
		}
		if fileCfg.ReadTimeoutSeconds > 0 {
			cfg.ReadTimeoutSeconds = fileCfg.ReadTimeoutSeconds
		}
		if fileCfg.WriteTimeoutSeconds > 0 {
			cfg.WriteTimeoutSeconds = fileCfg.WriteTimeoutSeconds
		}
		if fileCfg.ShutdownSeconds > 0 {
			cfg.ShutdownSeconds = fileCfg.ShutdownSeconds
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.Port = port
	}
	return cfg, nil
}
