package appsync

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/domain/chat"
	"goalsguild-backend/infrastructure/persistence/dynamo"
)

type stubStore struct {
	lastOp *dynamo.Operation
	result *dynamo.Result
}

func (s *stubStore) Execute(_ context.Context, op *dynamo.Operation) *dynamo.Result {
	s.lastOp = op
	if s.result != nil {
		return s.result
	}
	return &dynamo.Result{}
}

func newHandler(store *stubStore) *Handler {
	tables := dynamo.Tables{Core: "gg_core", Guild: "gg_guild"}
	reg := resolver.NewDefaultRegistry(tables, 50, 100, false)
	d := resolver.NewDispatcher(reg, store, nil, nil, zap.NewNop())
	return NewHandler(d, zap.NewNop())
}

func TestHandleResolvesField(t *testing.T) {
	store := &stubStore{}
	h := newHandler(store)

	out, err := h.Handle(context.Background(), Event{
		Field:     "addReaction",
		Arguments: json.RawMessage(`{"messageId":"m-1","shortcode":"thumbsup"}`),
		Identity:  json.RawMessage(`{"resolverContext":{"sub":"user-1"}}`),
	})
	require.NoError(t, err)

	rr, ok := out.(chat.ReactionResult)
	require.True(t, ok)
	assert.True(t, rr.Added)
	require.NotNil(t, store.lastOp)
	assert.Equal(t, dynamo.OpPut, store.lastOp.Kind)
	sk, ok := store.lastOp.Item["SK"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "REACT#thumbsup#user-1", sk.Value)
}

func TestHandleMissingIdentity(t *testing.T) {
	store := &stubStore{}
	h := newHandler(store)

	_, err := h.Handle(context.Background(), Event{
		Field:    "myProfile",
		Identity: json.RawMessage(`null`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
	assert.Nil(t, store.lastOp, "no operation may be issued without an identity")
}

func TestHandleMalformedIdentity(t *testing.T) {
	h := newHandler(&stubStore{})

	_, err := h.Handle(context.Background(), Event{
		Field:    "myProfile",
		Identity: json.RawMessage(`"not-an-object"`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}

func TestHandleUnknownField(t *testing.T) {
	h := newHandler(&stubStore{})

	_, err := h.Handle(context.Background(), Event{
		Field:    "nonsuch",
		Identity: json.RawMessage(`{"sub":"user-1"}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VALIDATION")
}
