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

	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	deps := &transporthttp.Deps{
		AccountRepo: dynamo.NewAccountRepo(dynamoClient, cfg.DynamoTables.Accounts),
	}

	router := transporthttp.NewAccountRouter(cfg, deps)
	transporthttp.Serve("account-api", cfg.AccountPort, cfg.AppEnv, router)
}
