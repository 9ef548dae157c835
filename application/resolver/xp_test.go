package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalsguild-backend/domain/gamification"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
)

func TestMyLevelProgressBuildRequest(t *testing.T) {
	r := NewMyLevelProgressResolver(testTables())
	c := resolverContext(t, FieldMyLevelProgress, "user-1", nil)

	op, err := r.BuildRequest(c)
	require.NoError(t, err)
	assert.Equal(t, dynamo.OpGet, op.Kind)
	assert.Equal(t, "USER#user-1", op.Key.PK)
	assert.Equal(t, "XP#SUMMARY", op.Key.SK)
}

func TestMyLevelProgressMissingRowIsNotFound(t *testing.T) {
	r := NewMyLevelProgressResolver(testTables())
	c := resolverContext(t, FieldMyLevelProgress, "user-1", nil)

	out, err := r.MapResponse(c, &dynamo.Result{})
	assert.Nil(t, out)
	requireErrType(t, err, errors.ErrorTypeNotFound)
}

func TestMyLevelProgressDerivesMissingCounters(t *testing.T) {
	r := NewMyLevelProgressResolver(testTables())
	c := resolverContext(t, FieldMyLevelProgress, "user-1", nil)

	item := marshalItem(t, xpSummaryItem{
		PK: "USER#user-1", SK: "XP#SUMMARY", UserID: "user-1", TotalXP: 350,
	})
	out, err := r.MapResponse(c, &dynamo.Result{Item: item})
	require.NoError(t, err)

	lp, ok := out.(gamification.LevelProgress)
	require.True(t, ok)
	assert.Equal(t, 350, lp.TotalXP)
	assert.Equal(t, 3, lp.CurrentLevel)
	assert.Equal(t, 300, lp.XPForCurrentLevel)
	assert.Equal(t, 600, lp.XPForNextLevel)
	assert.InDelta(t, 16.66, lp.XPProgress, 0.1)
}
