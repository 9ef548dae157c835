package resolver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"goalsguild-backend/application/ports"
	"goalsguild-backend/pkg/observability"
)

// Dispatcher resolves one field end to end: build the operation,
// execute it, map the result, publish any resulting domain events.
type Dispatcher struct {
	registry  *Registry
	store     ports.StorageExecutor
	publisher ports.EventPublisher
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewDispatcher creates a dispatcher
func NewDispatcher(
	registry *Registry,
	store ports.StorageExecutor,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		registry:  registry,
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Dispatch resolves a single field invocation
func (d *Dispatcher) Dispatch(ctx context.Context, rc *Context) (interface{}, error) {
	start := time.Now()
	result, err := d.dispatch(ctx, rc)

	if d.metrics != nil {
		d.metrics.RecordResolution(ctx, rc.Field, time.Since(start), err == nil)
	}
	if err != nil {
		d.logger.Warn("Field resolution failed",
			zap.String("field", rc.Field),
			zap.Error(err),
		)
	}
	return result, err
}

func (d *Dispatcher) dispatch(ctx context.Context, rc *Context) (interface{}, error) {
	fr, err := d.registry.Get(rc.Field)
	if err != nil {
		return nil, err
	}

	op, err := fr.BuildRequest(rc)
	if err != nil {
		return nil, err
	}

	res := d.store.Execute(ctx, op)

	result, err := fr.MapResponse(rc, res)
	if err != nil {
		return nil, err
	}

	if emitter, ok := fr.(EventEmitter); ok && d.publisher != nil {
		if evts := emitter.DomainEvents(rc, result); len(evts) > 0 {
			// Event publication is best-effort; the mutation already
			// succeeded and its response must not turn into an error.
			if pubErr := d.publisher.PublishBatch(ctx, evts); pubErr != nil {
				d.logger.Error("Failed to publish domain events",
					zap.String("field", rc.Field),
					zap.Int("count", len(evts)),
					zap.Error(pubErr),
				)
			}
		}
	}

	return result, nil
}
