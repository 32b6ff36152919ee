package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/storefront-api-nosql/internal/domain"
	"github.com/storefront-api-nosql/internal/infrastructure/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Put(ctx context.Context, o *domain.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockOrderStore) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderStore) Scan(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *mockOrderStore) UpdateStatus(ctx context.Context, orderID, orderStatus string) (map[string]interface{}, error) {
	args := m.Called(ctx, orderID, orderStatus)
	if u, _ := args.Get(0).(map[string]interface{}); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderStore) Delete(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, p notify.Payload) error {
	return m.Called(ctx, p).Error(0)
}

// --- Create tests ---

func TestCreate_ComputesTotalPrice(t *testing.T) {
	repo := &mockOrderStore{}
	var stored *domain.Order
	repo.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Order)
	}).Return(nil)

	svc := NewService(repo, &mockSender{})
	o, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		OrderID:   "ord-1",
		AccountID: "acct-1",
		Items: []domain.OrderItem{
			{Price: 2.50, Quantity: 2},
			{Price: 1.00, Quantity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "8.00", o.TotalPrice)
	assert.Equal(t, "Order", o.DataType)
	assert.Equal(t, "pending", o.OrderStatus)
	assert.NotEmpty(t, o.DateCreated)
	require.NotNil(t, stored)
	assert.Equal(t, o, stored)
}

func TestCreate_EmptyItems_ZeroTotal(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, &mockSender{})
	o, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		OrderID:   "ord-2",
		AccountID: "acct-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "0.00", o.TotalPrice)
}

func TestCreate_KeepsSuppliedStatus(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, &mockSender{})
	o, err := svc.Create(context.Background(), domain.CreateOrderRequest{
		OrderID:     "ord-3",
		AccountID:   "acct-1",
		OrderStatus: "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", o.OrderStatus)
}

func TestCreate_MissingRequiredFields_NoStoreAccess(t *testing.T) {
	repo := &mockOrderStore{}
	svc := NewService(repo, &mockSender{})

	_, err := svc.Create(context.Background(), domain.CreateOrderRequest{OrderID: "ord-1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Put")
}

// --- List tests ---

func TestList_AppliesOffsetAndLimit(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("Scan", mock.Anything, domain.OrderFilter{}).Return([]domain.Order{
		{OrderID: "a"}, {OrderID: "b"}, {OrderID: "c"}, {OrderID: "d"},
	}, nil)

	svc := NewService(repo, &mockSender{})
	orders, err := svc.List(context.Background(), domain.OrderFilter{}, 1, 2)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "b", orders[0].OrderID)
	assert.Equal(t, "c", orders[1].OrderID)
}

// --- UpdateStatus tests ---

func TestUpdateStatus_SendsExactlyOneNotification(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("UpdateStatus", mock.Anything, "ord-1", "shipped").
		Return(map[string]interface{}{"orderStatus": "shipped"}, nil)

	sender := &mockSender{}
	var sent notify.Payload
	sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(notify.Payload)
	}).Return(nil).Once()

	svc := NewService(repo, sender)
	result, err := svc.UpdateStatus(context.Background(), "ord-1", domain.UpdateOrderStatusRequest{
		OrderStatus: "shipped",
		AccountID:   "acct-1",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"orderStatus": "shipped"}, result.UpdatedAttributes)

	assert.True(t, strings.HasPrefix(sent.NotificationID, "ord-1-"))
	assert.Equal(t, "acct-1", sent.UserID)
	assert.Equal(t, "OrderStatusUpdate", sent.TypeID)
	assert.Equal(t, "Your order status has been updated to: shipped", sent.Content)
	sender.AssertExpectations(t)
}

func TestUpdateStatus_StoreFailure_NoNotificationAttempted(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("UpdateStatus", mock.Anything, "ord-1", "shipped").
		Return(nil, errors.New("dynamo unavailable"))

	sender := &mockSender{}
	svc := NewService(repo, sender)

	_, err := svc.UpdateStatus(context.Background(), "ord-1", domain.UpdateOrderStatusRequest{
		OrderStatus: "shipped",
	})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotificationFailed))
	sender.AssertNotCalled(t, "Send")
}

func TestUpdateStatus_NotifyFailure_ReportedAfterWrite(t *testing.T) {
	repo := &mockOrderStore{}
	repo.On("UpdateStatus", mock.Anything, "ord-1", "shipped").
		Return(map[string]interface{}{"orderStatus": "shipped"}, nil)

	sender := &mockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("endpoint returned 503"))

	svc := NewService(repo, sender)
	result, err := svc.UpdateStatus(context.Background(), "ord-1", domain.UpdateOrderStatusRequest{
		OrderStatus: "shipped",
		AccountID:   "acct-1",
	})

	// The store write already happened and is not rolled back.
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotificationFailed))
	require.NotNil(t, result)
	assert.Equal(t, map[string]interface{}{"orderStatus": "shipped"}, result.UpdatedAttributes)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_MissingStatus_BadRequest(t *testing.T) {
	repo := &mockOrderStore{}
	sender := &mockSender{}
	svc := NewService(repo, sender)

	_, err := svc.UpdateStatus(context.Background(), "ord-1", domain.UpdateOrderStatusRequest{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "UpdateStatus")
	sender.AssertNotCalled(t, "Send")
}

// --- Update tests ---

func TestUpdate_ReplacesRecordOnKey(t *testing.T) {
	repo := &mockOrderStore{}
	var stored *domain.Order
	repo.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Order)
	}).Return(nil)

	svc := NewService(repo, &mockSender{})
	o, err := svc.Update(context.Background(), "ord-1", domain.UpdateOrderRequest{
		AccountID:   "acct-2",
		OrderStatus: "delivered",
	})

	require.NoError(t, err)
	assert.Equal(t, "ord-1", o.OrderID)
	assert.Equal(t, "Order", o.DataType)
	assert.Equal(t, "delivered", o.OrderStatus)
	assert.NotEmpty(t, o.DateUpdated)
	assert.Equal(t, o, stored)
}
