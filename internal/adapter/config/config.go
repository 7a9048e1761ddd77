package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Broker   *Broker
	Engine   *Engine
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Broker struct {
	Brokers string `env:"KAFKA_BROKERS"`
}

type Engine struct {
	InternalDriver      string `env:"INTERNAL_ENGINE_DRIVER"`
	LockingBufferFactor string `env:"LOCKING_BUFFER_FACTOR"`
	OrderProcessorQueue string `env:"ORDER_PROCESSOR_QUEUE"`
	MatchingQueue       string `env:"MATCHING_QUEUE"`
	ReconcileSeconds    int    `env:"OUTBOX_RECONCILE_SECONDS"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var broker Broker
	var engine Engine
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&broker.Brokers, "b", `localhost:9092`, "Kafka broker list, comma separated")
	flag.StringVar(&engine.InternalDriver, "e", `peatio`, "Internal matching engine driver id")
	flag.StringVar(&engine.LockingBufferFactor, "f", `1.1`, "Market buy locking buffer factor")
	flag.StringVar(&engine.OrderProcessorQueue, "q", `order_processor`, "Order processor queue name")
	flag.StringVar(&engine.MatchingQueue, "c", `matching`, "Matching engine queue name")
	flag.IntVar(&engine.ReconcileSeconds, "i", 15, "Outbox reconcile interval, seconds")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&broker)
	if err != nil {
		return nil, fmt.Errorf("error parsing broker config: %w", err)
	}
	err = env.Parse(&engine)
	if err != nil {
		return nil, fmt.Errorf("error parsing engine config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Broker:   &broker,
		Engine:   &engine,
		App:      &app,
	}

	return &config, nil
}
