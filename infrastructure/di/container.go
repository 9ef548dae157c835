package di

import (
	"go.uber.org/zap"

	"goalsguild-backend/application/ports"
	"goalsguild-backend/application/resolver"
	"goalsguild-backend/infrastructure/config"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	Tables          dynamo.Tables
	Store           ports.StorageExecutor
	Publisher       ports.EventPublisher
	ConnectionStore ports.ConnectionStore
	Registry        *resolver.Registry
	Dispatcher      *resolver.Dispatcher
	Metrics         *observability.Metrics
	Tracer          *observability.Tracer
	JWTValidator    *auth.JWTValidator
}

// Shutdown flushes buffered telemetry before the process exits
func (c *Container) Shutdown() {
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}
