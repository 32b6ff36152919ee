package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/storefront-api-nosql/internal/application/account"
	"github.com/storefront-api-nosql/internal/application/notification"
	"github.com/storefront-api-nosql/internal/application/order"
	"github.com/storefront-api-nosql/internal/config"
	"github.com/storefront-api-nosql/internal/transport/http/handler"
	appmiddleware "github.com/storefront-api-nosql/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// newBaseRouter builds a chi router with the middleware chain and JSON
// not-found handler shared by all three services. Routing is exact-match
// against the declared templates; everything else falls through here.
func newBaseRouter(cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.NotFound(handler.RouteNotFound)
	r.MethodNotAllowed(handler.RouteNotFound)
	return r
}

// NewNotificationRouter builds the notification service router.
func NewNotificationRouter(cfg *config.Config, deps *Deps) http.Handler {
	svc := notification.NewService(deps.NotificationRepo, deps.NotificationTypeRepo)
	h := handler.NewNotificationHandler(svc)
	healthH := handler.NewHealthHandler()

	r := newBaseRouter(cfg)
	r.Get("/health-check/{action}", healthH.Ping)

	r.Post("/notifications", h.Create)
	r.Get("/notifications", h.List)
	r.Get("/notifications/history", h.History)
	r.Get("/notifications/{notificationId}", h.Get)
	r.Delete("/notifications/{notificationId}", h.Delete)

	r.Post("/notification-types", h.CreateType)
	r.Get("/notification-types", h.ListTypes)
	r.Get("/notification-types/{typeId}", h.GetType)
	r.Delete("/notification-types/{typeId}", h.DeleteType)

	return r
}

// NewOrderRouter builds the order service router.
func NewOrderRouter(cfg *config.Config, deps *Deps) http.Handler {
	svc := order.NewService(deps.OrderRepo, deps.Notifier)
	h := handler.NewOrderHandler(svc)
	healthH := handler.NewHealthHandler()

	r := newBaseRouter(cfg)
	r.Get("/health-check/{action}", healthH.Ping)

	r.Get("/orders", h.List)
	r.Post("/orders", h.Create)
	r.Get("/orders/{orderId}", h.Get)
	r.Patch("/orders/{orderId}", h.Update)
	r.Delete("/orders/{orderId}", h.Delete)
	r.Patch("/orders/{orderId}/status", h.UpdateStatus)

	return r
}

// NewAccountRouter builds the account service router.
func NewAccountRouter(cfg *config.Config, deps *Deps) http.Handler {
	svc := account.NewService(deps.AccountRepo)
	h := handler.NewAccountHandler(svc)
	healthH := handler.NewHealthHandler()

	// 5 requests/second, burst of 10 — applied to the login endpoints.
	loginRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	r := newBaseRouter(cfg)
	r.Get("/health-check/{action}", healthH.Ping)

	r.Get("/accounts", h.List)
	r.Post("/accounts", h.Create)
	r.Post("/account/add_employee", h.Create)

	r.With(loginRL.Limit).Patch("/account/login/guest", h.Login)
	r.With(loginRL.Limit).Patch("/account/login/registered", h.Login)

	r.Get("/account/{id}", h.Get)
	r.Delete("/account/{id}", h.Delete)
	r.Patch("/account/{id}/logout", h.Logout)
	r.Post("/account/{id}/delete-confirmation", h.DeleteConfirm)

	r.Put("/account/{id}/userPreferences", h.UpdatePreferences)
	r.Get("/account/{id}/userPreferences", h.GetPreferences)
	r.Delete("/account/{id}/userPreferences", h.DeletePreferences)

	return r
}
