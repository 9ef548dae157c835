package resolver

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"

	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/errors"
)

func testTables() dynamo.Tables {
	return dynamo.Tables{
		Core:        "gg_core",
		Guild:       "gg_guild",
		Connections: "gg_connections",
	}
}

func identityFor(sub string) *auth.Identity {
	return &auth.Identity{Sub: sub}
}

func resolverContext(t *testing.T, field, sub string, args interface{}) *Context {
	t.Helper()
	c := &Context{Field: field}
	if sub != "" {
		c.Identity = identityFor(sub)
	}
	if args != nil {
		raw, err := json.Marshal(args)
		require.NoError(t, err)
		c.Args = raw
	}
	return c
}

func marshalItem(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func requireErrType(t *testing.T, err error, typ errors.ErrorType) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected an application error, got %v", err)
	require.Equal(t, typ, appErr.Type)
}
