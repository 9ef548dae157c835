package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalsguild-backend/domain/chat"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
)

func TestAddReactionBuildRequest(t *testing.T) {
	r := NewAddReactionResolver(testTables())
	c := resolverContext(t, FieldAddReaction, "user-1", ReactionArgs{MessageID: "m-1", Shortcode: "thumbsup"})

	op, err := r.BuildRequest(c)
	require.NoError(t, err)

	assert.Equal(t, dynamo.OpPut, op.Kind)
	assert.Equal(t, "gg_core", op.Table)
	assert.Equal(t, "attribute_not_exists(SK)", op.Condition)
}

func TestAddReactionOutcomes(t *testing.T) {
	r := NewAddReactionResolver(testTables())
	c := resolverContext(t, FieldAddReaction, "user-1", ReactionArgs{MessageID: "m-1", Shortcode: "thumbsup"})

	added, err := r.MapResponse(c, &dynamo.Result{})
	require.NoError(t, err)
	assert.Equal(t, chat.ReactionResult{MessageID: "m-1", Shortcode: "thumbsup", Added: true, Delta: 1}, added)

	// Repeating the add is a success, not a conflict
	repeat, err := r.MapResponse(c, &dynamo.Result{CondFailed: true})
	require.NoError(t, err)
	assert.Equal(t, chat.ReactionResult{MessageID: "m-1", Shortcode: "thumbsup", Added: false, Delta: 0}, repeat)
}

func TestAddReactionEventsOnlyOnChange(t *testing.T) {
	r := NewAddReactionResolver(testTables())
	c := resolverContext(t, FieldAddReaction, "user-1", ReactionArgs{MessageID: "m-1", Shortcode: "thumbsup"})

	changed := chat.ReactionResult{MessageID: "m-1", Shortcode: "thumbsup", Added: true, Delta: 1}
	evts := r.DomainEvents(c, changed)
	require.Len(t, evts, 1)
	assert.Equal(t, "chat.reaction_toggled", evts[0].GetEventType())

	noop := chat.ReactionResult{MessageID: "m-1", Shortcode: "thumbsup", Added: false, Delta: 0}
	assert.Empty(t, r.DomainEvents(c, noop))
}

func TestRemoveReactionBuildRequest(t *testing.T) {
	r := NewRemoveReactionResolver(testTables())
	c := resolverContext(t, FieldRemoveReaction, "user-1", ReactionArgs{MessageID: "m-1", Shortcode: "thumbsup"})

	op, err := r.BuildRequest(c)
	require.NoError(t, err)

	assert.Equal(t, dynamo.OpDelete, op.Kind)
	assert.Equal(t, "MSG#m-1", op.Key.PK)
	assert.Equal(t, "REACT#thumbsup#user-1", op.Key.SK)
	assert.Equal(t, "attribute_exists(PK)", op.Condition)
}

func TestRemoveReactionOutcomes(t *testing.T) {
	r := NewRemoveReactionResolver(testTables())
	c := resolverContext(t, FieldRemoveReaction, "user-1", ReactionArgs{MessageID: "m-1", Shortcode: "thumbsup"})

	removed, err := r.MapResponse(c, &dynamo.Result{})
	require.NoError(t, err)
	assert.Equal(t, chat.ReactionResult{MessageID: "m-1", Shortcode: "thumbsup", Added: false, Delta: -1}, removed)

	noop, err := r.MapResponse(c, &dynamo.Result{CondFailed: true})
	require.NoError(t, err)
	assert.Equal(t, chat.ReactionResult{MessageID: "m-1", Shortcode: "thumbsup", Added: false, Delta: 0}, noop)
	assert.Empty(t, r.DomainEvents(c, noop))
}

func TestReactionRequiresIdentity(t *testing.T) {
	args := ReactionArgs{MessageID: "m-1", Shortcode: "thumbsup"}

	_, err := NewAddReactionResolver(testTables()).BuildRequest(resolverContext(t, FieldAddReaction, "", args))
	requireErrType(t, err, errors.ErrorTypeUnauthorized)

	_, err = NewRemoveReactionResolver(testTables()).BuildRequest(resolverContext(t, FieldRemoveReaction, "", args))
	requireErrType(t, err, errors.ErrorTypeUnauthorized)
}

func TestListReactions(t *testing.T) {
	r := NewListReactionsResolver(testTables())
	c := resolverContext(t, FieldListReactions, "", ListReactionsArgs{MessageID: "m-1"})

	op, err := r.BuildRequest(c)
	require.NoError(t, err)
	assert.Equal(t, dynamo.OpQuery, op.Kind)
	require.NotNil(t, op.KeyCondition)
	assert.Equal(t, "MSG#m-1", op.KeyCondition.PK)
	assert.Equal(t, dynamo.ReactionSKPrefix, op.KeyCondition.SKPrefix)

	out, err := r.MapResponse(c, &dynamo.Result{})
	require.NoError(t, err)
	reactions, ok := out.([]chat.Reaction)
	require.True(t, ok)
	assert.NotNil(t, reactions)
	assert.Empty(t, reactions)
}
