package config

import (
	env "github.com/caarlos0/env/v11"
)

type CommonConfig struct {
	LogLevel string `env:"COMMON_LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":5001"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DB" envDefault:"kisansetu"`
}

// AdminConfig holds the shared secret gating the admin order endpoints.
// The default token is for local development only and MUST be overridden
// via ADMIN_TOKEN in any real deployment.
type AdminConfig struct {
	Token string `env:"ADMIN_TOKEN" envDefault:"dev-secret-token"`
}

// RabbitConfig: an empty URL disables order event publishing.
type RabbitConfig struct {
	URL string `env:"RABBIT_URL"`
}

type Config struct {
	Common CommonConfig
	HTTP   HTTPConfig
	Mongo  MongoConfig
	Admin  AdminConfig
	Rabbit RabbitConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
