package auth

import (
	"encoding/json"

	"goalsguild-backend/pkg/errors"
)

// Identity is the caller identity attached to a resolver invocation.
//
// Two shapes arrive here: requests authorized by the custom Lambda
// authorizer carry the subject inside ResolverContext, native Cognito
// requests carry it as the top-level sub claim.
type Identity struct {
	Sub             string                 `json:"sub"`
	Username        string                 `json:"username"`
	Claims          map[string]interface{} `json:"claims"`
	ResolverContext map[string]interface{} `json:"resolverContext"`
}

// ParseIdentity decodes a raw identity object. A null or empty payload
// yields a nil identity, which ResolveCallerID rejects.
func ParseIdentity(raw json.RawMessage) (*Identity, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, errors.NewUnauthorizedError("malformed identity")
	}
	return &id, nil
}

// ResolveCallerID returns the caller's subject or an unauthorized error.
// The Lambda-authorizer shape (resolverContext.sub) wins over the native
// Cognito shape (sub). Callers must invoke this before building any key
// scoped to the current user.
func ResolveCallerID(id *Identity) (string, error) {
	if id == nil {
		return "", errors.NewUnauthorizedError("missing identity")
	}
	if id.ResolverContext != nil {
		if sub, ok := id.ResolverContext["sub"].(string); ok && sub != "" {
			return sub, nil
		}
	}
	if id.Sub != "" {
		return id.Sub, nil
	}
	return "", errors.NewUnauthorizedError("missing sub claim")
}
