package di

import (
	"context"
	"fmt"
	"time"

	"GoldPulse/internal/domain/repository"
	"GoldPulse/internal/handler/api"
	mid "GoldPulse/internal/middleware"
	"GoldPulse/internal/normalization"
	internalrepo "GoldPulse/internal/repository"
	"GoldPulse/internal/service/goldapi"
	"GoldPulse/internal/service/goldstream"
	"GoldPulse/internal/usecase"
	"GoldPulse/pkg/cache"
	pkgch "GoldPulse/pkg/clickhouse"
	"GoldPulse/pkg/config"
	xhttp "GoldPulse/pkg/http"
	pkgkafka "GoldPulse/pkg/kafka"
	applogger "GoldPulse/pkg/logger"
	"GoldPulse/pkg/metrics"
	"GoldPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "console"
	if cfg.Environment == "production" {
		format = "json"
	}
	return applogger.New(&applogger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS goldpulse",
		"CREATE TABLE IF NOT EXISTS goldpulse.price_ticks (ts DateTime, category String, price Float64, bar_buy Float64, bar_sell Float64, ornament_buy Float64, ornament_sell Float64, price_change Float64, source String, event_id String) ENGINE=MergeTree ORDER BY (category, ts)",
	}); err != nil {
		_ = client.Close() // cannot log here (DI layer no logger); propagate error
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideTickStorage creates ClickHouse storage repository.
func ProvideTickStorage(chClient *pkgch.Client, cfg *config.Config) repository.Storage {
	return internalrepo.NewClickHouseStorage(chClient.DB(), cfg.ClickHouse.Database+".price_ticks")
}

// ProvideTickPublisher creates Kafka publisher repository.
func ProvideTickPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideGoldStream creates the upstream WebSocket price stream.
func ProvideGoldStream(cfg *config.Config) repository.PriceStream {
	return goldstream.New(
		cfg.Stream.APIKey,
		cfg.Stream.WebSocketURL,
		cfg.Stream.Categories,
		cfg.Stream.ReconnectDelay,
		cfg.Stream.PingInterval,
	)
}

// ProvideTickProcessor creates the tick processor use case.
func ProvideTickProcessor(
	pub repository.Publisher,
	store repository.Storage,
	metrics repository.Metrics,
	cfg *config.Config,
) *usecase.TickProcessor {
	return usecase.NewTickProcessor(
		pub,
		store,
		metrics,
		cfg.Backend.Type,
		cfg.Backend.BatchSize,
		cfg.Backend.BatchTimeout,
	)
}

// ProvideTickCollector creates the tick collector use case.
func ProvideTickCollector(
	stream repository.PriceStream,
	processor *usecase.TickProcessor,
	metrics repository.Metrics,
) *usecase.TickCollector {
	// Build middleware pipeline between WebSocket and the backend
	pipe := mid.NewRealtimePipeline(processor, metrics,
		mid.WithMaxRPS(50),
		mid.WithBufferSize(2000),
	)
	return usecase.NewTickCollector(stream, processor, metrics, pipe)
}

// ProvideCache creates the series cache: layered Redis+memory when Redis is
// configured, in-process memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MemoryMaxSize)), nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc, cache.WithLayeredMemorySize(cfg.Cache.MemoryMaxSize)), nil
}

// ProvideNormalizer creates the payload normalizer.
func ProvideNormalizer(log *applogger.Logger) *normalization.Normalizer {
	return normalization.New(log)
}

// ProvideSeriesFetcher creates the upstream HTTP data client.
func ProvideSeriesFetcher(cfg *config.Config, log *applogger.Logger) usecase.SeriesFetcher {
	return goldapi.New(
		cfg.Upstream.BaseURL,
		cfg.Upstream.Timeout,
		cfg.Upstream.MaxRPS,
		cfg.Upstream.BurstCapacity,
		log,
	)
}

// ProvideSeriesService creates the series use case.
func ProvideSeriesService(
	fetcher usecase.SeriesFetcher,
	norm *normalization.Normalizer,
	c cache.Service,
	metrics repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.SeriesService {
	return usecase.NewSeriesService(fetcher, norm, c, metrics, log, cfg.Cache.SeriesTTL)
}

// ProvideSeriesHandler creates the Echo route handler.
func ProvideSeriesHandler(log *applogger.Logger, svc *usecase.SeriesService, store repository.Storage) xhttp.Handler {
	return api.NewSeriesEchoHandler(log, svc, store)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	collector *usecase.TickCollector,
	chClient *pkgch.Client,
	handler xhttp.Handler,
) *server.App {
	app := server.New(cfg, collector, chClient, handler)
	// attach tick processor to app for closing resources via collector
	if collector != nil {
		app.TickProc = collector.Processor()
	}
	return app
}
