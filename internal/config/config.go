package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"jefstore-gasstations"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Mongo struct {
		URI              string        `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
		Database         string        `envconfig:"MONGODB_DATABASE" default:"jefstore"`
		SelectionTimeout time.Duration `envconfig:"MONGODB_SELECTION_TIMEOUT" default:"5s"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
