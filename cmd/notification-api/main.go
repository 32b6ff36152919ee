package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/storefront-api-nosql/internal/config"
	"github.com/storefront-api-nosql/internal/infrastructure/dynamo"
	transporthttp "github.com/storefront-api-nosql/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	deps := &transporthttp.Deps{
		NotificationRepo:     dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications),
		NotificationTypeRepo: dynamo.NewNotificationTypeRepo(dynamoClient, cfg.DynamoTables.NotificationTypes),
	}

	router := transporthttp.NewNotificationRouter(cfg, deps)
	transporthttp.Serve("notification-api", cfg.NotificationPort, cfg.AppEnv, router)
}
