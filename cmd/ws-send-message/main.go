// WebSocket fan-out. Triggered by chat.message_sent events on the bus;
// pushes the message to every connection subscribed to the room and
// reaps connections API Gateway reports as gone.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"go.uber.org/zap"

	"goalsguild-backend/infrastructure/config"
	"goalsguild-backend/infrastructure/di"
)

var (
	container *di.Container
	apiClient *apigatewaymanagementapi.Client
)

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	endpoint := cfg.WebSocketEndpoint
	apiClient = apigatewaymanagementapi.NewFromConfig(awsCfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = &endpoint
	})
}

type messageSentDetail struct {
	MessageID string `json:"message_id"`
	RoomID    string `json:"room_id"`
	SenderID  string `json:"sender_id"`
}

func handler(ctx context.Context, event events.EventBridgeEvent) error {
	var detail messageSentDetail
	if err := json.Unmarshal(event.Detail, &detail); err != nil {
		container.Logger.Error("Malformed event detail", zap.Error(err))
		return err
	}

	conns, err := container.ConnectionStore.ListByRoom(ctx, detail.RoomID)
	if err != nil {
		container.Logger.Error("Failed to list connections",
			zap.String("roomId", detail.RoomID),
			zap.Error(err),
		)
		return err
	}

	payload, err := json.Marshal(map[string]string{
		"action":    "messageSent",
		"messageId": detail.MessageID,
		"roomId":    detail.RoomID,
		"senderId":  detail.SenderID,
	})
	if err != nil {
		return err
	}

	for _, conn := range conns {
		connectionID := conn.ConnectionID
		_, err := apiClient.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
			ConnectionId: &connectionID,
			Data:         payload,
		})
		if err == nil {
			continue
		}

		var gone *apigwtypes.GoneException
		if errors.As(err, &gone) {
			container.Logger.Info("Reaping stale connection",
				zap.String("connectionId", connectionID),
			)
			if delErr := container.ConnectionStore.Delete(ctx, conn.RoomID, connectionID); delErr != nil {
				container.Logger.Warn("Failed to delete stale connection", zap.Error(delErr))
			}
			continue
		}
		container.Logger.Error("Failed to post to connection",
			zap.String("connectionId", connectionID),
			zap.Error(err),
		)
	}
	return nil
}

func main() {
	lambda.Start(handler)
}
