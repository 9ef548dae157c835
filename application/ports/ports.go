package ports

import (
	"context"

	"goalsguild-backend/domain/chat"
	"goalsguild-backend/domain/events"
	"goalsguild-backend/infrastructure/persistence/dynamo"
)

// StorageExecutor runs a single storage operation descriptor
type StorageExecutor interface {
	Execute(ctx context.Context, op *dynamo.Operation) *dynamo.Result
}

// EventPublisher publishes domain events to the event bus
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, batch []events.DomainEvent) error
}

// ConnectionStore tracks live WebSocket connections for chat fan-out.
// Connections are keyed by room so delivery is one query per message.
type ConnectionStore interface {
	Save(ctx context.Context, conn chat.Connection) error
	Delete(ctx context.Context, roomID, connectionID string) error
	ListByRoom(ctx context.Context, roomID string) ([]chat.Connection, error)
}
