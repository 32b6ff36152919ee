package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/storefront-api-nosql/internal/config"
	"github.com/storefront-api-nosql/internal/infrastructure/dynamo"
	"github.com/storefront-api-nosql/internal/infrastructure/notify"
	transporthttp "github.com/storefront-api-nosql/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	deps := &transporthttp.Deps{
		OrderRepo: dynamo.NewOrderRepo(dynamoClient, cfg.DynamoTables.Orders),
		Notifier:  notify.NewClient(cfg.NotificationIngestURL),
	}

	router := transporthttp.NewOrderRouter(cfg, deps)
	transporthttp.Serve("order-api", cfg.OrderPort, cfg.AppEnv, router)
}
