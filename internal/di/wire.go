//go:build wireinject
// +build wireinject

package di

import (
	"RiverSight/pkg/config"
	"RiverSight/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideInfra,

		// Data sources and sinks
		ProvideHistorySource,
		ProvidePublisher,
		ProvideNarrative,

		// Use cases
		ProvideAnalyzer,

		// Transport
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
