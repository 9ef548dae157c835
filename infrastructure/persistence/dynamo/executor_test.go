package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryInput_BeginsWith(t *testing.T) {
	op := &Operation{
		Kind:  OpQuery,
		Table: "gg_core",
		KeyCondition: &KeyCondition{
			PK:       "USER#u1",
			SKPrefix: "GOAL#",
		},
	}

	input, err := BuildQueryInput(op)

	require.NoError(t, err)
	assert.Equal(t, "gg_core", aws.ToString(input.TableName))
	assert.False(t, aws.ToBool(input.ScanIndexForward))
	assert.Nil(t, input.Limit)
	assert.Nil(t, input.FilterExpression)
	require.NotNil(t, input.KeyConditionExpression)
	// expression builder emits placeholders; the real values live in the maps
	assert.Contains(t, *input.KeyConditionExpression, "begins_with")
	assertHasValue(t, input.ExpressionAttributeValues, "USER#u1")
}

func TestBuildQueryInput_AfterBoundAndLimit(t *testing.T) {
	op := &Operation{
		Kind:  OpQuery,
		Table: "gg_guild",
		KeyCondition: &KeyCondition{
			PK:      "GUILD#g1",
			SKAfter: "MSG#1700000000000",
		},
		Limit: 100,
	}

	input, err := BuildQueryInput(op)

	require.NoError(t, err)
	assert.Equal(t, int32(100), aws.ToInt32(input.Limit))
	assert.Contains(t, *input.KeyConditionExpression, ">")
	assertHasValue(t, input.ExpressionAttributeValues, "MSG#1700000000000")
}

func TestBuildQueryInput_OptionalFilterOnlyWhenPresent(t *testing.T) {
	op := &Operation{
		Kind:         OpQuery,
		Table:        "gg_core",
		KeyCondition: &KeyCondition{PK: "USER#u1", SKPrefix: "GOAL#"},
		Filters:      []Filter{{Attribute: "status", Value: "active"}},
	}

	input, err := BuildQueryInput(op)

	require.NoError(t, err)
	require.NotNil(t, input.FilterExpression)
	assertHasValue(t, input.ExpressionAttributeValues, "active")
}

func TestBuildQueryInput_MissingKeyCondition(t *testing.T) {
	_, err := BuildQueryInput(&Operation{Kind: OpQuery, Table: "gg_core"})
	assert.Error(t, err)
}

func TestBuildScanInput(t *testing.T) {
	op := &Operation{
		Kind:  OpScan,
		Table: "gg_core",
		Filters: []Filter{
			{Attribute: "Type", Value: "BadgeDefinition"},
			{Attribute: "Rarity", Value: "epic"},
		},
	}

	input, err := BuildScanInput(op)

	require.NoError(t, err)
	require.NotNil(t, input.FilterExpression)
	assertHasValue(t, input.ExpressionAttributeValues, "BadgeDefinition")
	assertHasValue(t, input.ExpressionAttributeValues, "epic")
}

func TestBuildScanInput_NoFilters(t *testing.T) {
	_, err := BuildScanInput(&Operation{Kind: OpScan, Table: "gg_core"})
	assert.Error(t, err)
}

func TestPaginationTokenRoundTrip(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "ROOM#ROOM1"},
		"SK": &types.AttributeValueMemberS{Value: "MSG#1700000000000#m1"},
	}

	token, err := encodeToken(lastKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := decodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, lastKey, decoded)
}

func TestEncodeToken_Empty(t *testing.T) {
	token, err := encodeToken(nil)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestDecodeToken_Garbage(t *testing.T) {
	_, err := decodeToken("!!not-base64!!")
	assert.Error(t, err)
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		name      string
		requested int32
		want      int32
	}{
		{"omitted uses default", 0, 50},
		{"negative uses default", -5, 50},
		{"in range passes through", 80, 80},
		{"over ceiling clamps", 150, 100},
		{"exactly ceiling", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampLimit(tt.requested, 50, 100))
		})
	}
}

func assertHasValue(t *testing.T, values map[string]types.AttributeValue, want string) {
	t.Helper()
	for _, av := range values {
		if s, ok := av.(*types.AttributeValueMemberS); ok && s.Value == want {
			return
		}
	}
	t.Errorf("expression values missing %q", want)
}
