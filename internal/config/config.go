package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env-default:"info"`
	Difficulty        string `yaml:"difficulty" env-default:"2"`
	PlayerMark        string `yaml:"player-mark" env-default:"X"`
	StartPosition     string `yaml:"start-position" env-default:""`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path"`
}

type Redis struct {
	Host string `yaml:"host" env-default:""`
	Port string `yaml:"port" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// GetRedisAddr returns the archive address, or an empty string when no
// host is configured and the archive is disabled.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
