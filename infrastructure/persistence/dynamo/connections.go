package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"goalsguild-backend/domain/chat"
)

type connectionItem struct {
	PK           string `dynamodbav:"PK"`
	SK           string `dynamodbav:"SK"`
	ConnectionID string `dynamodbav:"ConnectionID"`
	UserID       string `dynamodbav:"UserID"`
	RoomID       string `dynamodbav:"RoomID"`
}

// ConnectionStore keeps live WebSocket connections in the connections
// table, keyed by room so a message fan-out is a single query.
type ConnectionStore struct {
	client *dynamodb.Client
	table  string
	logger *zap.Logger
}

// NewConnectionStore creates a connection store
func NewConnectionStore(client *dynamodb.Client, table string, logger *zap.Logger) *ConnectionStore {
	return &ConnectionStore{client: client, table: table, logger: logger}
}

func connectionRoomPK(roomID string) string { return "ROOM#" + roomID }

// Save registers a connection under its room
func (s *ConnectionStore) Save(ctx context.Context, conn chat.Connection) error {
	item, err := attributevalue.MarshalMap(connectionItem{
		PK:           connectionRoomPK(conn.RoomID),
		SK:           ConnectionPK(conn.ConnectionID),
		ConnectionID: conn.ConnectionID,
		UserID:       conn.UserID,
		RoomID:       conn.RoomID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save connection %s: %w", conn.ConnectionID, err)
	}
	return nil
}

// Delete removes a connection, typically after a GoneException
func (s *ConnectionStore) Delete(ctx context.Context, roomID, connectionID string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: connectionRoomPK(roomID)},
			"SK": &types.AttributeValueMemberS{Value: ConnectionPK(connectionID)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete connection %s: %w", connectionID, err)
	}
	return nil
}

// ListByRoom returns every live connection subscribed to a room
func (s *ConnectionStore) ListByRoom(ctx context.Context, roomID string) ([]chat.Connection, error) {
	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :prefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: connectionRoomPK(roomID)},
			":prefix": &types.AttributeValueMemberS{Value: "CONN#"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list connections for room %s: %w", roomID, err)
	}

	conns := make([]chat.Connection, 0, len(out.Items))
	for _, raw := range out.Items {
		var item connectionItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			s.logger.Warn("Skipping malformed connection row", zap.Error(err))
			continue
		}
		conns = append(conns, chat.Connection{
			ConnectionID: item.ConnectionID,
			UserID:       item.UserID,
			RoomID:       item.RoomID,
		})
	}
	return conns, nil
}
