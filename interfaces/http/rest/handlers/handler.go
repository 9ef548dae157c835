// Package handlers exposes the resolver fields over REST. Each handler
// translates an HTTP request into a field invocation and dispatches it;
// all storage and event semantics live behind the dispatcher.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/common"
	"goalsguild-backend/pkg/errors"
)

// Handler dispatches REST requests through the field resolver stack
type Handler struct {
	dispatcher *resolver.Dispatcher
	logger     *zap.Logger
}

// NewHandler creates a handler
func NewHandler(dispatcher *resolver.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{dispatcher: dispatcher, logger: logger}
}

// dispatch resolves the field with the given arguments and writes the
// result. Identity comes from the auth middleware; an absent identity
// still dispatches so public fields keep working and caller-scoped
// fields fail closed inside the resolver.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request, field string, args interface{}, status int) {
	var raw json.RawMessage
	if args != nil {
		encoded, err := json.Marshal(args)
		if err != nil {
			common.RespondError(w, errors.NewInternalError("failed to encode arguments"))
			return
		}
		raw = encoded
	}

	result, err := h.dispatcher.Dispatch(r.Context(), &resolver.Context{
		Field:    field,
		Identity: auth.IdentityFromContext(r.Context()),
		Args:     raw,
	})
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, status, result)
}

// decodeBody reads a JSON request body into args
func decodeBody(r *http.Request, args interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err != nil {
		return errors.NewValidationError("failed to read request body")
	}
	if len(body) == 0 {
		return errors.NewValidationError("request body required")
	}
	if err := json.Unmarshal(body, args); err != nil {
		return errors.NewValidationError("malformed request body")
	}
	return nil
}
