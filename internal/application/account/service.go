package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/storefront-api-nosql/internal/domain"
	"github.com/storefront-api-nosql/internal/pkg/page"
	"github.com/storefront-api-nosql/internal/pkg/validate"
)

// GuestID is the literal login id that bypasses the store entirely.
const GuestID = "guest"

type Service interface {
	List(ctx context.Context, filter domain.AccountFilter, offset, limit int) ([]domain.Account, error)
	Create(ctx context.Context, req domain.CreateAccountRequest) (*domain.Account, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	Delete(ctx context.Context, id string) (*domain.Account, error)
	// DeleteConfirm deletes only when confirmed; a false confirmation is
	// not an error, it returns (nil, nil).
	DeleteConfirm(ctx context.Context, id string, confirmed bool) (*domain.Account, error)

	// Login returns (account, guest, err). guest is true for the "guest"
	// shortcut, which never touches the store and returns no record.
	Login(ctx context.Context, req domain.LoginRequest) (*domain.Account, bool, error)
	Logout(ctx context.Context, id string) (*domain.Account, error)

	UpdatePreferences(ctx context.Context, id string, prefs map[string]interface{}) (*domain.Preferences, error)
	GetPreferences(ctx context.Context, id string) (*domain.Preferences, error)
	DeletePreferences(ctx context.Context, id string) (*domain.Preferences, error)
}

type accountStore interface {
	PutAccount(ctx context.Context, a *domain.Account) error
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	Scan(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
	UpdateActivity(ctx context.Context, id string, active bool, lastActive string) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id string) (*domain.Account, error)
	PutPreferences(ctx context.Context, p *domain.Preferences) error
	GetPreferences(ctx context.Context, id string) (*domain.Preferences, error)
	DeletePreferences(ctx context.Context, id string) (*domain.Preferences, error)
}

type service struct {
	repo accountStore
}

func NewService(repo accountStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter domain.AccountFilter, offset, limit int) ([]domain.Account, error) {
	accounts, err := s.repo.Scan(ctx, filter)
	if err != nil {
		return nil, err
	}
	return page.Slice(accounts, offset, limit), nil
}

func (s *service) Create(ctx context.Context, req domain.CreateAccountRequest) (*domain.Account, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	a := &domain.Account{
		ID:          req.ID,
		DataType:    domain.DataTypeUser,
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		JobPosition: req.JobPosition,
	}
	if err := s.repo.PutAccount(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.GetAccount(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.DeleteAccount(ctx, id)
}

func (s *service) DeleteConfirm(ctx context.Context, id string, confirmed bool) (*domain.Account, error) {
	if !confirmed {
		return nil, nil
	}
	return s.repo.DeleteAccount(ctx, id)
}

// Login checks the supplied email and password against the stored record
// with plain equality. A missing account and a credential mismatch are
// indistinguishable to the caller.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.Account, bool, error) {
	if err := validate.Struct(req); err != nil {
		return nil, false, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	if req.ID == GuestID {
		return nil, true, nil
	}

	a, err := s.repo.GetAccount(ctx, req.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("invalid credentials: %w", domain.ErrNoAccess)
		}
		return nil, false, err
	}
	if req.Email != a.Email || req.Password != a.Password {
		return nil, false, fmt.Errorf("invalid credentials: %w", domain.ErrNoAccess)
	}

	updated, err := s.repo.UpdateActivity(ctx, req.ID, true, now())
	if err != nil {
		return nil, false, err
	}
	return updated, false, nil
}

// Logout flips active off unconditionally; there is no check that the
// caller owns the id.
func (s *service) Logout(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.UpdateActivity(ctx, id, false, now())
}

func (s *service) UpdatePreferences(ctx context.Context, id string, prefs map[string]interface{}) (*domain.Preferences, error) {
	p := &domain.Preferences{
		ID:       id,
		DataType: domain.DataTypePreferences,
		Item:     prefs,
	}
	if err := s.repo.PutPreferences(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPreferences(ctx context.Context, id string) (*domain.Preferences, error) {
	return s.repo.GetPreferences(ctx, id)
}

func (s *service) DeletePreferences(ctx context.Context, id string) (*domain.Preferences, error) {
	return s.repo.DeletePreferences(ctx, id)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
