// REST API Lambda behind API Gateway. This surface's data source is
// bound to the core table only; guild rooms resolve to empty pages
// here and are served through AppSync instead.
package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/infrastructure/config"
	"goalsguild-backend/infrastructure/di"
	"goalsguild-backend/interfaces/http/rest"
)

var (
	chiLambda *chiadapter.ChiLambdaV2
	container *di.Container
)

func init() {
	start := time.Now()
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Core-only registry: this deployment's IAM role cannot reach the
	// guild table.
	registry := resolver.NewDefaultRegistry(container.Tables, cfg.MessagePageDefault, cfg.MessagePageMax, true)
	dispatcher := resolver.NewDispatcher(registry, container.Store, container.Publisher, container.Metrics, container.Logger)

	router := rest.NewRouter(dispatcher, container.JWTValidator, cfg, container.Logger)
	handler := router.Setup()

	chiRouter, ok := handler.(*chi.Mux)
	if !ok {
		log.Fatal("Failed to cast handler to chi.Mux")
	}
	chiLambda = chiadapter.NewV2(chiRouter)

	container.Logger.Info("Cold start completed",
		zap.Duration("duration", time.Since(start)),
	)
}

func handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	return chiLambda.ProxyWithContextV2(ctx, req)
}

func main() {
	lambda.Start(handle)
}
