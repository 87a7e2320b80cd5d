package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Board    Board  `yaml:"board"`
	Engine   Engine `yaml:"engine"`
	Match    Match  `yaml:"match"`
}

type Board struct {
	Width         int `yaml:"width" env:"BOARD_WIDTH" env-default:"12"`
	Height        int `yaml:"height" env:"BOARD_HEIGHT" env-default:"12"`
	WinningLength int `yaml:"winning-length" env:"BOARD_WINNING_LENGTH" env-default:"5"`
}

type Engine struct {
	Depth   int `yaml:"depth" env:"ENGINE_DEPTH" env-default:"1"`
	Workers int `yaml:"workers" env:"ENGINE_WORKERS" env-default:"1"`
}

type Match struct {
	Opening  []Move `yaml:"opening"`
	MaxMoves int    `yaml:"max-moves" env:"MATCH_MAX_MOVES" env-default:"0"`
}

type Move struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
