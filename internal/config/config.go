package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Feed     Feed
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Log      Log
	Bot      Bot
	FeedStub FeedStub
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"bidhub"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	Namespace     string `env:"METRICS_NAMESPACE" envDefault:"bidhub"`
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
