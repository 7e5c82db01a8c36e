package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PIPESERVE_"

// envMappings maps environment variables to config paths explicitly, so
// underscores in key names stay unambiguous.
var envMappings = map[string]string{
	"PIPESERVE_SERVER_HOST":         "server.host",
	"PIPESERVE_SERVER_PORT":         "server.port",
	"PIPESERVE_SERVER_CORS_ENABLED": "server.cors_enabled",
	"PIPESERVE_LOG_LEVEL":           "log.level",
	"PIPESERVE_LOG_JSON":            "log.json",
	"PIPESERVE_LOG_SOURCE":          "log.source",
}

type ServerConfig struct {
	Host        string `koanf:"host"         validate:"required"`
	Port        int    `koanf:"port"         validate:"gt=0,lte=65535"`
	CORSEnabled bool   `koanf:"cors_enabled"`
}

func (c *ServerConfig) FullAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

type Config struct {
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 1416,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration with precedence defaults < file < env. The
// file path is optional; a missing file is not an error when no path was
// given.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			if configPath, ok := envMappings[key]; ok {
				return configPath, coerceEnvValue(value)
			}
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// coerceEnvValue turns numeric and boolean environment values into their
// typed form so unmarshaling into the config struct stays strict.
func coerceEnvValue(value string) any {
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
