package services

import (
	"errors"

	"github.com/swaglabs/loginsuite/internal/models"
)

// Login rejection messages shown by the login screen
var (
	ErrUsernameRequired   = errors.New("Epic sadface: Username is required")
	ErrPasswordRequired   = errors.New("Epic sadface: Password is required")
	ErrInvalidCredentials = errors.New("Epic sadface: Username and password do not match any user in this service")
	ErrLockedOut          = errors.New("Epic sadface: Sorry, this user has been locked out.")
)

// AccountRepository defines lookup of known accounts
type AccountRepository interface {
	GetAccount(username string) (*models.Account, bool)
}

// AuthService decides whether a login attempt is accepted
type AuthService interface {
	Authenticate(username, password string) (*models.Account, error)
}

// AuthServiceImpl implements AuthService
type AuthServiceImpl struct {
	accounts AccountRepository
}

// NewAuthService creates a new auth service
func NewAuthService(accounts AccountRepository) AuthService {
	return &AuthServiceImpl{
		accounts: accounts,
	}
}

// Authenticate validates the submitted form. Field presence is checked before
// the account lookup, and a locked account is only reported for a correct password.
// Input is taken as typed: a username of spaces is a wrong username, not a missing one.
func (s *AuthServiceImpl) Authenticate(username, password string) (*models.Account, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	account, ok := s.accounts.GetAccount(username)
	if !ok || account.Password != password {
		return nil, ErrInvalidCredentials
	}
	if account.Locked {
		return nil, ErrLockedOut
	}

	return account, nil
}

// MemoryAccounts is an in-memory AccountRepository
type MemoryAccounts struct {
	accounts map[string]models.Account
}

// NewMemoryAccounts indexes the given accounts by username
func NewMemoryAccounts(accounts []models.Account) *MemoryAccounts {
	m := &MemoryAccounts{accounts: make(map[string]models.Account, len(accounts))}
	for _, a := range accounts {
		m.accounts[a.Username] = a
	}
	return m
}

// GetAccount returns a copy of the named account
func (m *MemoryAccounts) GetAccount(username string) (*models.Account, bool) {
	a, ok := m.accounts[username]
	if !ok {
		return nil, false
	}
	return &a, true
}
