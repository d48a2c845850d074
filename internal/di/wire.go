//go:build wireinject
// +build wireinject

package di

import (
	"GoldPulse/pkg/config"
	"GoldPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideCache,

		// Repositories
		ProvideTickStorage,
		ProvideTickPublisher,
		ProvideGoldStream,
		ProvideSeriesFetcher,

		// Use cases
		ProvideNormalizer,
		ProvideTickProcessor,
		ProvideTickCollector,
		ProvideSeriesService,

		// HTTP
		ProvideSeriesHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
