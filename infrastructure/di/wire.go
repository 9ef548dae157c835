//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"goalsguild-backend/infrastructure/config"
)

// SuperSet is the main provider set
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideTables,
	ProvideTracer,
	ProvideMetrics,
	ProvideStorageExecutor,
	ProvideEventPublisher,
	ProvideConnectionStore,
	ProvideRegistry,
	ProvideDispatcher,
	ProvideJWTValidator,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
