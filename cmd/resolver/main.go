// AppSync direct Lambda data source. Every GraphQL field configured
// against this function arrives as one resolver event.
package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"goalsguild-backend/infrastructure/config"
	"goalsguild-backend/infrastructure/di"
	"goalsguild-backend/interfaces/appsync"
)

var handler *appsync.Handler

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	handler = appsync.NewHandler(container.Dispatcher, container.Logger)
}

func main() {
	lambda.Start(handler.Handle)
}
