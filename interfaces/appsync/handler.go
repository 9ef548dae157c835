// Package appsync adapts AppSync direct Lambda resolver invocations to
// the field dispatcher.
package appsync

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/errors"
)

// Event is the payload AppSync sends a direct Lambda data source. The
// request mapping template forwards field name, arguments and identity
// verbatim.
type Event struct {
	Field     string          `json:"field"`
	Arguments json.RawMessage `json:"arguments"`
	Identity  json.RawMessage `json:"identity"`
	Source    json.RawMessage `json:"source"`
}

// Handler resolves AppSync events through the dispatcher
type Handler struct {
	dispatcher *resolver.Dispatcher
	logger     *zap.Logger
}

// NewHandler creates a handler
func NewHandler(dispatcher *resolver.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{dispatcher: dispatcher, logger: logger}
}

// Handle resolves one field invocation. Errors go back to AppSync with
// the classification prefixed so the response template can map them to
// GraphQL error types.
func (h *Handler) Handle(ctx context.Context, event Event) (interface{}, error) {
	identity, err := auth.ParseIdentity(event.Identity)
	if err != nil {
		return nil, gqlError(err)
	}

	rc := &resolver.Context{
		Field:    event.Field,
		Identity: identity,
		Args:     event.Arguments,
		Source:   event.Source,
	}

	result, err := h.dispatcher.Dispatch(ctx, rc)
	if err != nil {
		return nil, gqlError(err)
	}
	return result, nil
}

// gqlError renders an error as "TYPE: message". Internal details never
// cross the boundary; only classified messages do.
func gqlError(err error) error {
	if appErr := errors.GetAppError(err); appErr != nil {
		return fmt.Errorf("%s: %s", appErr.Type, appErr.Message)
	}
	return fmt.Errorf("%s: %s", errors.ErrorTypeInternal, "internal error")
}
