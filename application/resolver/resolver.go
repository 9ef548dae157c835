// Package resolver implements the GraphQL field resolvers as
// request/response pairs over single-table DynamoDB operations.
//
// Each field is one FieldResolver: BuildRequest derives exactly one
// storage operation from the caller's identity and arguments (raising
// only unauthorized/validation errors), MapResponse reshapes the typed
// result into the field's output (classifying everything else). No
// resolver holds state across invocations.
package resolver

import (
	"encoding/json"
	"fmt"

	"goalsguild-backend/domain/events"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/errors"
	"goalsguild-backend/pkg/utils"
)

// Context carries one field resolution's inputs
type Context struct {
	Field    string
	Identity *auth.Identity
	Args     json.RawMessage
	Source   json.RawMessage

	// stash lets BuildRequest hand the fully materialized write (ids,
	// timestamps) to MapResponse so the response echoes what was stored.
	stash interface{}
}

// CallerID resolves the caller's subject, failing closed when no
// identity is present. Resolvers for caller-scoped data call this
// before building any key.
func (c *Context) CallerID() (string, error) {
	return auth.ResolveCallerID(c.Identity)
}

// BindArgs decodes and validates the field arguments
func (c *Context) BindArgs(v interface{}) error {
	if len(c.Args) > 0 {
		if err := json.Unmarshal(c.Args, v); err != nil {
			return errors.NewValidationError(fmt.Sprintf("malformed arguments: %v", err))
		}
	}
	if err := utils.ValidateStruct(v); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

// FieldResolver binds one GraphQL field to one storage operation
type FieldResolver interface {
	// BuildRequest produces the operation descriptor. It may only fail
	// with unauthorized or validation errors; no operation is issued
	// when it fails.
	BuildRequest(c *Context) (*dynamo.Operation, error)

	// MapResponse reshapes the storage result into the field's output.
	// Upstream errors, not-found, conflicts and idempotent no-ops are
	// all classified here.
	MapResponse(c *Context, res *dynamo.Result) (interface{}, error)
}

// EventEmitter is implemented by mutation resolvers whose successful
// outcomes raise domain events.
type EventEmitter interface {
	DomainEvents(c *Context, result interface{}) []events.DomainEvent
}

// Registry maps GraphQL field names to their resolvers
type Registry struct {
	resolvers map[string]FieldResolver
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{resolvers: make(map[string]FieldResolver)}
}

// Register binds a field name to its resolver
func (r *Registry) Register(field string, fr FieldResolver) {
	r.resolvers[field] = fr
}

// Get returns the resolver for a field
func (r *Registry) Get(field string) (FieldResolver, error) {
	fr, ok := r.resolvers[field]
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown field: %s", field))
	}
	return fr, nil
}

// Fields lists the registered field names
func (r *Registry) Fields() []string {
	fields := make([]string, 0, len(r.resolvers))
	for f := range r.resolvers {
		fields = append(fields, f)
	}
	return fields
}

// mapUpstream converts a storage failure into the domain error surface,
// preserving the original message.
func mapUpstream(err error) error {
	return errors.NewDatabaseError(err.Error(), err)
}
