package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/storefront-api-nosql/internal/domain"
	"github.com/storefront-api-nosql/internal/pkg/validate"
)

// Defaults applied to optional create fields.
const (
	defaultTypeID        = "defaultType"
	defaultContactMethod = "unknown"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error)
	List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	Delete(ctx context.Context, notificationID string) (*domain.Notification, error)
	// History is List with at least one filter required and an empty result
	// reported as not found.
	History(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)

	CreateType(ctx context.Context, t domain.NotificationType) (domain.NotificationType, error)
	ListTypes(ctx context.Context) ([]domain.NotificationType, error)
	GetType(ctx context.Context, typeID string) (domain.NotificationType, error)
	DeleteType(ctx context.Context, typeID string) (domain.NotificationType, error)
}

type notificationStore interface {
	Put(ctx context.Context, n *domain.Notification) error
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	Scan(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error)
	Delete(ctx context.Context, notificationID string) (*domain.Notification, error)
}

type typeStore interface {
	Put(ctx context.Context, t domain.NotificationType) error
	Get(ctx context.Context, typeID string) (domain.NotificationType, error)
	Scan(ctx context.Context) ([]domain.NotificationType, error)
	Delete(ctx context.Context, typeID string) (domain.NotificationType, error)
}

type service struct {
	notifications notificationStore
	types         typeStore
}

func NewService(notifications notificationStore, types typeStore) Service {
	return &service{notifications: notifications, types: types}
}

func (s *service) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	n := &domain.Notification{
		NotificationID: req.NotificationID,
		UserID:         req.UserID,
		TypeID:         req.TypeID,
		Content:        req.Content,
		ContactMethod:  req.ContactMethod,
		CreatedAt:      req.CreatedAt,
	}
	if n.TypeID == "" {
		n.TypeID = defaultTypeID
	}
	if n.ContactMethod == "" {
		n.ContactMethod = defaultContactMethod
	}
	if n.CreatedAt == "" {
		n.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.notifications.Put(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	return s.notifications.Scan(ctx, filter)
}

func (s *service) Get(ctx context.Context, notificationID string) (*domain.Notification, error) {
	return s.notifications.Get(ctx, notificationID)
}

func (s *service) Delete(ctx context.Context, notificationID string) (*domain.Notification, error) {
	return s.notifications.Delete(ctx, notificationID)
}

func (s *service) History(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	if filter.Empty() {
		return nil, fmt.Errorf("'userId' or 'typeId' is required: %w", domain.ErrBadRequest)
	}
	history, err := s.notifications.Scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("no notification history found matching the provided criteria: %w", domain.ErrNotFound)
	}
	return history, nil
}

func (s *service) CreateType(ctx context.Context, t domain.NotificationType) (domain.NotificationType, error) {
	if t.TypeID() == "" {
		return nil, fmt.Errorf("'typeId' is a required field: %w", domain.ErrBadRequest)
	}
	if err := s.types.Put(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) ListTypes(ctx context.Context) ([]domain.NotificationType, error) {
	return s.types.Scan(ctx)
}

func (s *service) GetType(ctx context.Context, typeID string) (domain.NotificationType, error) {
	return s.types.Get(ctx, typeID)
}

func (s *service) DeleteType(ctx context.Context, typeID string) (domain.NotificationType, error) {
	return s.types.Delete(ctx, typeID)
}
