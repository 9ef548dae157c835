package resolver

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalsguild-backend/domain/gamification"
	"goalsguild-backend/infrastructure/persistence/dynamo"
)

func TestBadgeDefinitionsScan(t *testing.T) {
	r := NewBadgeDefinitionsResolver(testTables())

	c := resolverContext(t, FieldBadgeDefinitions, "", nil)
	op, err := r.BuildRequest(c)
	require.NoError(t, err)
	assert.Equal(t, dynamo.OpScan, op.Kind)
	require.Len(t, op.Filters, 1)
	assert.Equal(t, dynamo.Filter{Attribute: "Type", Value: "BadgeDefinition"}, op.Filters[0])

	filtered := resolverContext(t, FieldBadgeDefinitions, "", BadgeDefinitionsArgs{
		Category: "goals",
		Rarity:   gamification.RarityEpic,
	})
	op, err = r.BuildRequest(filtered)
	require.NoError(t, err)
	assert.Len(t, op.Filters, 3)
}

func TestBadgeDefinitionsMapResponse(t *testing.T) {
	r := NewBadgeDefinitionsResolver(testTables())
	c := resolverContext(t, FieldBadgeDefinitions, "", nil)

	out, err := r.MapResponse(c, &dynamo.Result{
		Items: []map[string]types.AttributeValue{
			marshalItem(t, badgeDefinitionItem{
				BadgeID: "first-goal", Name: "First Goal", Category: "goals",
				Rarity: gamification.RarityCommon, Target: 1,
			}),
		},
	})
	require.NoError(t, err)

	defs, ok := out.([]gamification.BadgeDefinition)
	require.True(t, ok)
	require.Len(t, defs, 1)
	assert.Equal(t, "first-goal", defs[0].BadgeID)
}

func TestMyBadges(t *testing.T) {
	r := NewMyBadgesResolver(testTables())
	c := resolverContext(t, FieldMyBadges, "user-1", nil)

	op, err := r.BuildRequest(c)
	require.NoError(t, err)
	assert.Equal(t, dynamo.OpQuery, op.Kind)
	require.NotNil(t, op.KeyCondition)
	assert.Equal(t, "USER#user-1", op.KeyCondition.PK)
	assert.Equal(t, dynamo.BadgeSKPrefix, op.KeyCondition.SKPrefix)

	out, err := r.MapResponse(c, &dynamo.Result{})
	require.NoError(t, err)
	badges, ok := out.([]gamification.BadgeProgress)
	require.True(t, ok)
	assert.NotNil(t, badges)
	assert.Empty(t, badges)
}
