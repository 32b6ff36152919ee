package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/storefront-api-nosql/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAccountStore struct{ mock.Mock }

func (m *mockAccountStore) PutAccount(ctx context.Context, a *domain.Account) error {
	return m.Called(ctx, a).Error(0)
}
func (m *mockAccountStore) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountStore) Scan(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *mockAccountStore) UpdateActivity(ctx context.Context, id string, active bool, lastActive string) (*domain.Account, error) {
	args := m.Called(ctx, id, active, lastActive)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountStore) DeleteAccount(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if a, _ := args.Get(0).(*domain.Account); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountStore) PutPreferences(ctx context.Context, p *domain.Preferences) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockAccountStore) GetPreferences(ctx context.Context, id string) (*domain.Preferences, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*domain.Preferences); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAccountStore) DeletePreferences(ctx context.Context, id string) (*domain.Preferences, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*domain.Preferences); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestLogin_Guest_NeverTouchesStore(t *testing.T) {
	repo := &mockAccountStore{}
	svc := NewService(repo)

	a, guest, err := svc.Login(context.Background(), domain.LoginRequest{ID: GuestID})

	require.NoError(t, err)
	assert.True(t, guest)
	assert.Nil(t, a)
	repo.AssertNotCalled(t, "GetAccount")
	repo.AssertNotCalled(t, "UpdateActivity")
}

func TestLogin_Match_MarksAccountActive(t *testing.T) {
	repo := &mockAccountStore{}
	repo.On("GetAccount", mock.Anything, "u1").Return(&domain.Account{
		ID:       "u1",
		Email:    "jo@example.com",
		Password: "secret",
	}, nil)
	repo.On("UpdateActivity", mock.Anything, "u1", true, mock.MatchedBy(func(ts string) bool {
		_, err := time.Parse(time.RFC3339, ts)
		return err == nil
	})).Return(&domain.Account{ID: "u1", Active: true}, nil)

	svc := NewService(repo)
	a, guest, err := svc.Login(context.Background(), domain.LoginRequest{
		ID:       "u1",
		Email:    "jo@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.False(t, guest)
	require.NotNil(t, a)
	assert.True(t, a.Active)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword_NoAccess(t *testing.T) {
	repo := &mockAccountStore{}
	repo.On("GetAccount", mock.Anything, "u1").Return(&domain.Account{
		ID:       "u1",
		Email:    "jo@example.com",
		Password: "secret",
	}, nil)

	svc := NewService(repo)
	_, _, err := svc.Login(context.Background(), domain.LoginRequest{
		ID:       "u1",
		Email:    "jo@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoAccess))
	repo.AssertNotCalled(t, "UpdateActivity")
}

func TestLogin_UnknownAccount_NoAccess(t *testing.T) {
	repo := &mockAccountStore{}
	repo.On("GetAccount", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	svc := NewService(repo)
	_, _, err := svc.Login(context.Background(), domain.LoginRequest{
		ID:       "ghost",
		Email:    "x@example.com",
		Password: "x",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoAccess))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestLogin_MissingID_BadRequest(t *testing.T) {
	repo := &mockAccountStore{}
	svc := NewService(repo)

	_, _, err := svc.Login(context.Background(), domain.LoginRequest{Email: "jo@example.com"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "GetAccount")
}

func TestLogout_FlipsActiveOff(t *testing.T) {
	repo := &mockAccountStore{}
	repo.On("UpdateActivity", mock.Anything, "u1", false, mock.Anything).
		Return(&domain.Account{ID: "u1", Active: false}, nil)

	svc := NewService(repo)
	a, err := svc.Logout(context.Background(), "u1")

	require.NoError(t, err)
	assert.False(t, a.Active)
	repo.AssertExpectations(t)
}

func TestCreate_MissingName_NoStoreAccess(t *testing.T) {
	repo := &mockAccountStore{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), domain.CreateAccountRequest{ID: "u1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "PutAccount")
}

func TestCreate_TagsUserDataType(t *testing.T) {
	repo := &mockAccountStore{}
	var stored *domain.Account
	repo.On("PutAccount", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Account)
	}).Return(nil)

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), domain.CreateAccountRequest{ID: "u1", Name: "Jo"})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, domain.DataTypeUser, stored.DataType)
}

func TestDeleteConfirm_NotConfirmed_NoDelete(t *testing.T) {
	repo := &mockAccountStore{}
	svc := NewService(repo)

	a, err := svc.DeleteConfirm(context.Background(), "u1", false)

	require.NoError(t, err)
	assert.Nil(t, a)
	repo.AssertNotCalled(t, "DeleteAccount")
}

func TestDeleteConfirm_Confirmed_Deletes(t *testing.T) {
	repo := &mockAccountStore{}
	repo.On("DeleteAccount", mock.Anything, "u1").Return(&domain.Account{ID: "u1"}, nil)

	svc := NewService(repo)
	a, err := svc.DeleteConfirm(context.Background(), "u1", true)

	require.NoError(t, err)
	assert.Equal(t, "u1", a.ID)
}

func TestUpdatePreferences_StoresUnderPreferencesDataType(t *testing.T) {
	repo := &mockAccountStore{}
	var stored *domain.Preferences
	repo.On("PutPreferences", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Preferences)
	}).Return(nil)

	svc := NewService(repo)
	p, err := svc.UpdatePreferences(context.Background(), "u1", map[string]interface{}{"theme": "dark"})

	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, domain.DataTypePreferences, p.DataType)
	assert.Equal(t, "dark", p.Item["theme"])
	assert.Equal(t, p, stored)
}
