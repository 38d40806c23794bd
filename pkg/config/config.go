package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP      HTTP
	Logger    Logger
	Postgres  Postgres
	Kafka     Kafka
	Lightning Lightning
	Jobs      Jobs
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	InvoiceEventsTopic string   `env:"KAFKA_INVOICE_EVENTS_TOPIC" envDefault:"lnurlpay.invoice.events"`
}

type Lightning struct {
	// Networks lists the crypto codes the gateway serves.
	Networks []string `env:"LIGHTNING_NETWORKS" envDefault:"BTC"`

	// InternalNodes maps crypto codes to connection strings. Connection
	// strings contain "=" and ";", so pairs use "->" as separator:
	// LIGHTNING_INTERNAL_NODES="BTC->type=lnd-rest;server=https://lnd:8080;macaroonhex=..."
	InternalNodes map[string]string `env:"LIGHTNING_INTERNAL_NODES" envKeyValSeparator:"->" envDefault:""`

	NodeTimeout time.Duration `env:"LIGHTNING_NODE_TIMEOUT" envDefault:"30s"`
}

type Jobs struct {
	SettlementPollInterval time.Duration `env:"JOBS_SETTLEMENT_POLL_INTERVAL" envDefault:"30s"`
	ExpireSweepInterval    time.Duration `env:"JOBS_EXPIRE_SWEEP_INTERVAL" envDefault:"1m"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
