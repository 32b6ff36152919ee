package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/storefront-api-nosql/internal/domain"
	"github.com/storefront-api-nosql/internal/infrastructure/notify"
	"github.com/storefront-api-nosql/internal/pkg/page"
	"github.com/storefront-api-nosql/internal/pkg/validate"
)

const (
	dataTypeOrder      = "Order"
	defaultOrderStatus = "pending"

	// Type tag attached to every synthesized status-update notification.
	statusUpdateTypeID = "OrderStatusUpdate"
)

// ErrNotificationFailed reports that the status write succeeded but the
// outbound notification did not. The store mutation is never rolled back.
var ErrNotificationFailed = errors.New("order status updated, but notification failed")

// StatusUpdate is the outcome of a status transition: the attributes the
// store returned for the partial update plus the notification payload that
// was (or was attempted to be) sent.
type StatusUpdate struct {
	UpdatedAttributes map[string]interface{}
	Notification      notify.Payload
}

type Service interface {
	List(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Order, error)
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Update(ctx context.Context, orderID string, req domain.UpdateOrderRequest) (*domain.Order, error)
	Delete(ctx context.Context, orderID string) (*domain.Order, error)
	// UpdateStatus writes the new status, then fires one notification.
	// On notification failure it returns the StatusUpdate alongside an
	// error wrapping ErrNotificationFailed.
	UpdateStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (*StatusUpdate, error)
}

type orderStore interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Scan(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, orderStatus string) (map[string]interface{}, error)
	Delete(ctx context.Context, orderID string) (*domain.Order, error)
}

type service struct {
	repo   orderStore
	sender notify.Sender
}

func NewService(repo orderStore, sender notify.Sender) Service {
	return &service{repo: repo, sender: sender}
}

func (s *service) List(ctx context.Context, filter domain.OrderFilter, offset, limit int) ([]domain.Order, error) {
	orders, err := s.repo.Scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	return page.Slice(orders, offset, limit), nil
}

func (s *service) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	o := &domain.Order{
		OrderID:     req.OrderID,
		DataType:    dataTypeOrder,
		AccountID:   req.AccountID,
		Items:       req.Items,
		TotalPrice:  totalPrice(req.Items),
		OrderStatus: req.OrderStatus,
		DateCreated: today(),
	}
	if o.OrderStatus == "" {
		o.OrderStatus = defaultOrderStatus
	}

	if err := s.repo.Put(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.Get(ctx, orderID)
}

// Update replaces the whole record: the body is merged onto the path key.
func (s *service) Update(ctx context.Context, orderID string, req domain.UpdateOrderRequest) (*domain.Order, error) {
	o := &domain.Order{
		OrderID:     orderID,
		DataType:    dataTypeOrder,
		AccountID:   req.AccountID,
		Items:       req.Items,
		TotalPrice:  req.TotalPrice,
		OrderStatus: req.OrderStatus,
		DateCreated: req.DateCreated,
		DateUpdated: today(),
	}
	if err := s.repo.Put(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.Delete(ctx, orderID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, req domain.UpdateOrderStatusRequest) (*StatusUpdate, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, req.OrderStatus)
	if err != nil {
		return nil, err
	}

	result := &StatusUpdate{
		UpdatedAttributes: updated,
		Notification: notify.Payload{
			NotificationID: fmt.Sprintf("%s-%d", orderID, time.Now().UnixMilli()),
			UserID:         req.AccountID,
			TypeID:         statusUpdateTypeID,
			Content:        fmt.Sprintf("Your order status has been updated to: %s", req.OrderStatus),
		},
	}

	// The status is already written; a failed send is reported but never
	// rolled back.
	if err := s.sender.Send(ctx, result.Notification); err != nil {
		return result, fmt.Errorf("%v: %w", err, ErrNotificationFailed)
	}
	return result, nil
}

// totalPrice derives the order total: sum(price*quantity) over all line
// items, formatted to two decimals.
func totalPrice(items []domain.OrderItem) string {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return fmt.Sprintf("%.2f", total)
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
