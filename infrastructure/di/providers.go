package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"goalsguild-backend/application/ports"
	"goalsguild-backend/application/resolver"
	"goalsguild-backend/infrastructure/config"
	"goalsguild-backend/infrastructure/messaging/eventbridge"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/observability"
)

// ProvideLogger creates the process logger
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig loads the AWS SDK configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideTables maps configuration to the physical table set
func ProvideTables(cfg *config.Config) dynamo.Tables {
	return dynamo.Tables{
		Core:        cfg.CoreTable,
		Guild:       cfg.GuildTable,
		Connections: cfg.ConnectionsTable,
	}
}

// ProvideTracer creates the X-Ray tracer, nil when tracing is disabled
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("goalsguild-backend")
}

// ProvideMetrics creates the CloudWatch metrics recorder, nil when
// metrics are disabled.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewMetrics("GoalsGuild/Resolvers", client, logger)
}

// ProvideStorageExecutor creates the operation executor
func ProvideStorageExecutor(client *awsdynamodb.Client, logger *zap.Logger, tracer *observability.Tracer) ports.StorageExecutor {
	return dynamo.NewExecutor(client, logger, tracer)
}

// ProvideEventPublisher creates the EventBridge publisher
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideConnectionStore creates the WebSocket connection store
func ProvideConnectionStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ConnectionStore {
	return dynamo.NewConnectionStore(client, cfg.ConnectionsTable, logger)
}

// ProvideRegistry wires the full resolver registry with guild-table
// routing. Serves the AppSync data plane, which reaches both tables.
func ProvideRegistry(cfg *config.Config, tables dynamo.Tables) *resolver.Registry {
	return resolver.NewDefaultRegistry(tables, cfg.MessagePageDefault, cfg.MessagePageMax, false)
}

// ProvideDispatcher creates the field dispatcher
func ProvideDispatcher(
	registry *resolver.Registry,
	store ports.StorageExecutor,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *resolver.Dispatcher {
	return resolver.NewDispatcher(registry, store, publisher, metrics, logger)
}

// ProvideJWTValidator creates the REST surface's token validator.
// Without a configured secret it returns nil and the authenticated
// surfaces reject every request, so entrypoints that never validate
// tokens still cold-start.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	if cfg.JWTSecret == "" {
		return nil, nil
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	})
}
