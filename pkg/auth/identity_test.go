package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalsguild-backend/pkg/errors"
)

func TestResolveCallerID_LambdaAuthorizerShape(t *testing.T) {
	id := &Identity{
		ResolverContext: map[string]interface{}{"sub": "user-123"},
	}

	sub, err := ResolveCallerID(id)

	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
}

func TestResolveCallerID_CognitoShape(t *testing.T) {
	id := &Identity{Sub: "user-456"}

	sub, err := ResolveCallerID(id)

	require.NoError(t, err)
	assert.Equal(t, "user-456", sub)
}

func TestResolveCallerID_PrefersResolverContext(t *testing.T) {
	id := &Identity{
		Sub:             "cognito-sub",
		ResolverContext: map[string]interface{}{"sub": "authorizer-sub"},
	}

	sub, err := ResolveCallerID(id)

	require.NoError(t, err)
	assert.Equal(t, "authorizer-sub", sub)
}

func TestResolveCallerID_NilIdentity(t *testing.T) {
	_, err := ResolveCallerID(nil)

	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))
}

func TestResolveCallerID_NoSubAnywhere(t *testing.T) {
	tests := []struct {
		name string
		id   *Identity
	}{
		{"empty identity", &Identity{}},
		{"resolver context without sub", &Identity{ResolverContext: map[string]interface{}{"role": "admin"}}},
		{"non-string sub", &Identity{ResolverContext: map[string]interface{}{"sub": 42}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveCallerID(tt.id)
			require.Error(t, err)
			assert.True(t, errors.IsUnauthorized(err))
		})
	}
}

func TestParseIdentity(t *testing.T) {
	id, err := ParseIdentity(json.RawMessage(`{"sub":"u1","username":"alice"}`))
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "u1", id.Sub)
	assert.Equal(t, "alice", id.Username)

	id, err = ParseIdentity(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Nil(t, id)

	id, err = ParseIdentity(nil)
	require.NoError(t, err)
	assert.Nil(t, id)

	_, err = ParseIdentity(json.RawMessage(`{`))
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))
}
