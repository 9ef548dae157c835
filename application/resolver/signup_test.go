package resolver

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalsguild-backend/domain/user"
	"goalsguild-backend/infrastructure/persistence/dynamo"
	"goalsguild-backend/pkg/errors"
)

func TestCreateUserBuildsTransaction(t *testing.T) {
	r := NewCreateUserResolver(testTables())
	c := resolverContext(t, FieldCreateUser, "user-1", CreateUserArgs{
		Email:    "Ada@Example.COM",
		FullName: "Ada Lovelace",
	})

	op, err := r.BuildRequest(c)
	require.NoError(t, err)

	assert.Equal(t, dynamo.OpTransactWrite, op.Kind)
	require.Len(t, op.TransactItems, 2)

	profile := op.TransactItems[0]
	assert.Equal(t, "gg_core", profile.Table)
	assert.Equal(t, "attribute_not_exists(PK)", profile.Condition)
	assert.Equal(t, profileExistsReason, profile.FailureReason)

	unique := op.TransactItems[1]
	assert.Equal(t, "gg_core", unique.Table)
	assert.Equal(t, "attribute_not_exists(PK)", unique.Condition)
	assert.Equal(t, emailTakenReason, unique.FailureReason)

	// Email keys are normalized so casing cannot defeat uniqueness
	pk, ok := unique.Item["PK"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "EMAIL#ada@example.com", pk.Value)
	sk, ok := unique.Item["SK"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "UNIQUE#USER", sk.Value)
}

func TestCreateUserRequiresIdentity(t *testing.T) {
	r := NewCreateUserResolver(testTables())
	c := resolverContext(t, FieldCreateUser, "", CreateUserArgs{
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	})

	_, err := r.BuildRequest(c)
	requireErrType(t, err, errors.ErrorTypeUnauthorized)
}

func TestCreateUserConflictReportsFailedConstraint(t *testing.T) {
	r := NewCreateUserResolver(testTables())
	c := resolverContext(t, FieldCreateUser, "user-1", CreateUserArgs{
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	})

	_, err := r.MapResponse(c, &dynamo.Result{
		CondFailed:    true,
		FailedReasons: []string{emailTakenReason},
	})
	requireErrType(t, err, errors.ErrorTypeConflict)
	assert.Contains(t, err.Error(), emailTakenReason)
}

func TestCreateUserSuccessReturnsDefaultedProfile(t *testing.T) {
	r := NewCreateUserResolver(testTables())
	c := resolverContext(t, FieldCreateUser, "user-1", CreateUserArgs{
		Email:    "ada@example.com",
		FullName: "Ada Lovelace",
	})

	out, err := r.MapResponse(c, &dynamo.Result{})
	require.NoError(t, err)

	p, ok := out.(user.Profile)
	require.True(t, ok)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, user.DefaultTier, p.Tier)
	assert.Equal(t, user.DefaultStatus, p.Status)
	assert.True(t, p.NotificationPreferences.EmailEnabled)

	evts := r.DomainEvents(c, out)
	require.Len(t, evts, 1)
	assert.Equal(t, "user.signed_up", evts[0].GetEventType())
}

func TestIsEmailAvailable(t *testing.T) {
	r := NewIsEmailAvailableResolver(testTables())
	c := resolverContext(t, FieldIsEmailAvailable, "", IsEmailAvailableArgs{Email: "ada@example.com"})

	op, err := r.BuildRequest(c)
	require.NoError(t, err)
	assert.Equal(t, dynamo.OpGet, op.Kind)
	assert.Equal(t, "EMAIL#ada@example.com", op.Key.PK)
	assert.Equal(t, "UNIQUE#USER", op.Key.SK)

	free, err := r.MapResponse(c, &dynamo.Result{})
	require.NoError(t, err)
	assert.Equal(t, true, free)

	taken, err := r.MapResponse(c, &dynamo.Result{
		Item: marshalItem(t, emailUniqueItem{PK: "EMAIL#ada@example.com", SK: "UNIQUE#USER"}),
	})
	require.NoError(t, err)
	assert.Equal(t, false, taken)
}
