package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/logging"
	"github.com/2beens/fittracker/internal/telemetry/metrics"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// seeds the built-in system exercise catalog; safe to run repeatedly
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("env-file", ".env", "optional .env file with secrets")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Warnf("load env file [%s]: %s", *envFile, err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITTRACKER_POSTGRES_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("migrate db: %s", err)
	}

	metricsManager := metrics.NewManager("fittracker", "seed", prometheus.NewRegistry())
	service := exercises.NewService(
		exercises.NewRepo(dbPool),
		exercises.NewCatalogCache(1, time.Minute, metricsManager),
		metricsManager,
	)

	created, err := service.SeedSystemCatalog(ctx)
	if err != nil {
		log.Fatalf("seed system exercises: %s", err)
	}
	log.Infof("system exercises seeded: %d new, %d in catalog", created, len(exercises.SystemCatalog()))
}
