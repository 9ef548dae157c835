package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goalsguild-backend/domain/chat"
)

func avString(t *testing.T, av types.AttributeValue) string {
	t.Helper()
	s, ok := av.(*types.AttributeValueMemberS)
	require.True(t, ok)
	return s.Value
}

func TestConnectionRoomKeying(t *testing.T) {
	conn := chat.Connection{ConnectionID: "c-1", UserID: "user-1", RoomID: "ROOM1"}

	item, err := attributevalue.MarshalMap(connectionItem{
		PK:           connectionRoomPK(conn.RoomID),
		SK:           ConnectionPK(conn.ConnectionID),
		ConnectionID: conn.ConnectionID,
		UserID:       conn.UserID,
		RoomID:       conn.RoomID,
	})
	require.NoError(t, err)

	assert.Equal(t, "ROOM#ROOM1", avString(t, item["PK"]))
	assert.Equal(t, "CONN#c-1", avString(t, item["SK"]))

	var got connectionItem
	require.NoError(t, attributevalue.UnmarshalMap(item, &got))
	assert.Equal(t, conn, chat.Connection{
		ConnectionID: got.ConnectionID,
		UserID:       got.UserID,
		RoomID:       got.RoomID,
	})
}
