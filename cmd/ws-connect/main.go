// WebSocket $connect handler. Authenticates the caller and subscribes
// the connection to the requested room for chat fan-out.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"goalsguild-backend/domain/chat"
	"goalsguild-backend/infrastructure/config"
	"goalsguild-backend/infrastructure/di"
)

var container *di.Container

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

func handler(ctx context.Context, req events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	token := req.QueryStringParameters["token"]
	roomID := req.QueryStringParameters["roomId"]
	if roomID == "" {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusBadRequest, Body: "roomId required"}, nil
	}

	if container.JWTValidator == nil {
		return events.APIGatewayProxyResponse{StatusCode: http.StatusUnauthorized, Body: "unauthorized"}, nil
	}
	claims, err := container.JWTValidator.ValidateToken(token)
	if err != nil {
		container.Logger.Warn("WebSocket connect rejected", zap.Error(err))
		return events.APIGatewayProxyResponse{StatusCode: http.StatusUnauthorized, Body: "unauthorized"}, nil
	}

	conn := chat.Connection{
		ConnectionID: req.RequestContext.ConnectionID,
		UserID:       claims.UserID,
		RoomID:       roomID,
	}
	if err := container.ConnectionStore.Save(ctx, conn); err != nil {
		container.Logger.Error("Failed to save connection",
			zap.String("connectionId", conn.ConnectionID),
			zap.Error(err),
		)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError, Body: "failed to connect"}, nil
	}

	container.Logger.Info("WebSocket connected",
		zap.String("connectionId", conn.ConnectionID),
		zap.String("roomId", roomID),
	)
	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: "connected"}, nil
}

func main() {
	lambda.Start(handler)
}
