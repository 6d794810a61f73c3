package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type LogConfiguration struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Pretty bool   `envconfig:"LOG_PRETTY" default:"false"`
}

type DatabaseConfiguration struct {
	// An empty address keeps the move journal in memory.
	Address      string `envconfig:"MONGO_ADDRESS"`
	DatabaseName string `envconfig:"MONGO_DATABASE" default:"chess"`
	Collection   string `envconfig:"MONGO_COLLECTION" default:"moves"`
}

type StockfishConfiguration struct {
	// An empty path disables engine hints.
	Path  string   `envconfig:"STOCKFISH_PATH"`
	Args  []string `envconfig:"STOCKFISH_ARGS"`
	Depth int      `envconfig:"STOCKFISH_DEPTH" default:"12"`
}

type Configuration struct {
	Server struct {
		Host string `envconfig:"SERVER_HOST" default:"127.0.0.1"`
		Port string `envconfig:"SERVER_PORT" default:"8080"`
	}
	Session struct {
		ID string `envconfig:"SESSION_ID" default:"default"`
	}
	Database  DatabaseConfiguration
	Stockfish StockfishConfiguration
	Log       LogConfiguration
}

func (c *Configuration) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

type ReplayConfiguration struct {
	Database DatabaseConfiguration
	Log      LogConfiguration
}

func InitConfig() (*Configuration, error) {
	var cfg Configuration
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg.Stockfish.Depth); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func InitReplayConfig() (*ReplayConfiguration, error) {
	var cfg ReplayConfiguration
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(depth int) error {
	if depth <= 0 {
		return fmt.Errorf("STOCKFISH_DEPTH must be positive, got %d", depth)
	}
	return nil
}
