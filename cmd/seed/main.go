package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/storefront-api-nosql/internal/config"
	"github.com/storefront-api-nosql/internal/domain"
	"github.com/storefront-api-nosql/internal/infrastructure/dynamo"
	"github.com/storefront-api-nosql/internal/pkg/id"
)

// Seeds the local tables with sample data for development. The API itself
// never generates keys — callers supply them — so this is the one place
// ULIDs are minted.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	ctx := context.Background()

	client := dynamo.NewClient(cfg)
	dynamo.Bootstrap(ctx, client, cfg.DynamoTables)

	notifications := dynamo.NewNotificationRepo(client, cfg.DynamoTables.Notifications)
	notificationTypes := dynamo.NewNotificationTypeRepo(client, cfg.DynamoTables.NotificationTypes)
	orders := dynamo.NewOrderRepo(client, cfg.DynamoTables.Orders)
	accounts := dynamo.NewAccountRepo(client, cfg.DynamoTables.Accounts)

	log.Println("Creating notification types...")
	for _, t := range []domain.NotificationType{
		{"typeId": "OrderStatusUpdate", "description": "Order status change notices"},
		{"typeId": "Promotion", "description": "Marketing messages", "optOut": true},
		{"typeId": "defaultType"},
	} {
		if err := notificationTypes.Put(ctx, t); err != nil {
			log.Fatalf("seed notification type: %v", err)
		}
	}

	log.Println("Creating accounts...")
	position := "support"
	customerID := id.New()
	for _, a := range []*domain.Account{
		{
			ID:       customerID,
			DataType: domain.DataTypeUser,
			Name:     "Sample Customer",
			Email:    "customer@example.com",
			Password: "customer123",
		},
		{
			ID:          id.New(),
			DataType:    domain.DataTypeUser,
			Name:        "Sample Employee",
			Email:       "employee@example.com",
			Password:    "employee123",
			JobPosition: &position,
		},
	} {
		if err := accounts.PutAccount(ctx, a); err != nil {
			log.Fatalf("seed account: %v", err)
		}
	}

	if _, err := accounts.UpdateActivity(ctx, customerID, true, time.Now().UTC().Format(time.RFC3339)); err != nil {
		log.Fatalf("seed account activity: %v", err)
	}

	log.Println("Creating orders...")
	order := &domain.Order{
		OrderID:   id.New(),
		DataType:  "Order",
		AccountID: customerID,
		Items: []domain.OrderItem{
			{Price: 2.50, Quantity: 2},
			{Price: 1.00, Quantity: 3},
		},
		TotalPrice:  "8.00",
		OrderStatus: "pending",
		DateCreated: time.Now().UTC().Format("2006-01-02"),
	}
	if err := orders.Put(ctx, order); err != nil {
		log.Fatalf("seed order: %v", err)
	}

	log.Println("Creating notifications...")
	n := &domain.Notification{
		NotificationID: id.New(),
		UserID:         customerID,
		TypeID:         "OrderStatusUpdate",
		Content:        fmt.Sprintf("Your order status has been updated to: %s", order.OrderStatus),
		ContactMethod:  "email",
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := notifications.Put(ctx, n); err != nil {
		log.Fatalf("seed notification: %v", err)
	}

	log.Println("Done.")
}
