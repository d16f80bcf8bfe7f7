package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	MongoHost       string `envconfig:"MONGO_HOST" default:"mongo"`
	MongoPort       int    `envconfig:"MONGO_PORT" default:"27017"`
	DatabaseName    string `envconfig:"DATABASE_NAME" default:"rso_shop"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	KafkaBrokers    string `envconfig:"KAFKA_BROKERS" default:""` // empty disables event publishing
	SeedAPIURL      string `envconfig:"SEED_API_URL" default:"https://fakestoreapi.com"`
	SeedFixturePath string `envconfig:"SEED_FIXTURE_PATH" default:"testdata/seed_products.json"`

	TLS TLSConfig
}

type TLSConfig struct {
	Enabled    bool   `envconfig:"TLS_ENABLED" default:"false"`
	SocketPath string `envconfig:"SPIRE_SOCKET_PATH" default:"unix:///run/spire/sockets/agent.sock"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
