package http

import (
	"github.com/storefront-api-nosql/internal/infrastructure/dynamo"
	"github.com/storefront-api-nosql/internal/infrastructure/notify"
)

// Deps holds all infrastructure dependencies for the routers. Each router
// constructor uses only the fields its service needs.
type Deps struct {
	NotificationRepo     *dynamo.NotificationRepo
	NotificationTypeRepo *dynamo.NotificationTypeRepo
	OrderRepo            *dynamo.OrderRepo
	AccountRepo          *dynamo.AccountRepo

	// Notifier is the order service's outbound collaborator: it submits
	// synthesized notifications to the notification service.
	Notifier notify.Sender
}
