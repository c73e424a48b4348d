package main

import (
	"context"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/chainmetrics-io/chainmetrics/internal/dailymetrics"
	"github.com/chainmetrics-io/chainmetrics/internal/handlers/cli"
	"github.com/chainmetrics-io/chainmetrics/internal/infra/blockchain/ethereum"
	"github.com/chainmetrics-io/chainmetrics/internal/infra/storage/clickhouse"
	redisstorage "github.com/chainmetrics-io/chainmetrics/internal/infra/storage/redis"
	"github.com/chainmetrics-io/chainmetrics/internal/ingest"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/logger"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/telemetry"
	transporthttp "github.com/chainmetrics-io/chainmetrics/internal/pkg/transport/http"
	"github.com/chainmetrics-io/chainmetrics/internal/pkg/transport/jsonrpc"
	"github.com/chainmetrics-io/chainmetrics/internal/watermark"
)

// config holds every environment-driven setting of the chainmetrics binary.
type config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	ProviderEndpoint          string        `envconfig:"ETHEREUM_PROVIDER_ENDPOINT" required:"true"`
	ProviderRequestsPerSecond int           `envconfig:"ETHEREUM_PROVIDER_REQUESTS_PER_SECOND" default:"10"`
	ProviderHTTPTimeout       time.Duration `envconfig:"ETHEREUM_PROVIDER_HTTP_TIMEOUT" default:"10s"`

	RedisAddr     string `envconfig:"REDIS_ADDR" required:"true"`
	RedisUsername string `envconfig:"REDIS_USERNAME" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	ClickhouseDSN string `envconfig:"CLICKHOUSE_DSN" required:"true"`

	IngestConcurrency int `envconfig:"INGEST_CONCURRENCY" default:"4"`
}

func main() {
	ctx := context.Background()

	var cfg config
	envconfig.MustProcess("", &cfg)

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, "chainmetrics")
		if err != nil {
			panic(err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		panic(err)
	}
	defer logger.Sync()

	httpClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.ProviderHTTPTimeout))
	rpcConn := jsonrpc.NewClient(httpClient.StandardClient(), cfg.ProviderEndpoint)
	fetcher := ethereum.NewClient(rpcConn, ethereum.WithRequestsPerSecond(cfg.ProviderRequestsPerSecond))

	redisClient, err := redisstorage.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	repository, err := clickhouse.NewRepository(cfg.ClickhouseDSN)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to clickhouse", "error", err)
	}
	defer repository.Close()

	if err := repository.EnsureSchema(ctx); err != nil {
		logger.Fatal(ctx, "failed to ensure clickhouse schema", "error", err)
	}

	svc := ingest.New(
		fetcher,
		repository,
		dailymetrics.New(repository, repository),
		watermark.NewTracker(redisClient),
		ingest.WithDefaultConcurrency(cfg.IngestConcurrency),
	)

	if err := cli.Run(ctx, svc); err != nil {
		logger.Fatal(ctx, "chainmetrics exited with an error", "error", err)
	}
}
