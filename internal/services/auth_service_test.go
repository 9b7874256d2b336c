package services

import (
	"errors"
	"testing"

	"github.com/swaglabs/loginsuite/internal/models"
)

func TestAuthService_Authenticate(t *testing.T) {
	service := NewAuthService(NewMemoryAccounts(models.DefaultAccounts()))

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "standard user",
			username: "standard_user",
			password: "secret_sauce",
			wantErr:  nil,
		},
		{
			name:     "wrong password",
			username: "standard_user",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			username: "invalid_user",
			password: "invalid_password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "blank username",
			username: "",
			password: "secret_sauce",
			wantErr:  ErrUsernameRequired,
		},
		{
			name:     "blank password",
			username: "standard_user",
			password: "",
			wantErr:  ErrPasswordRequired,
		},
		{
			name:     "both blank reports username first",
			username: "",
			password: "",
			wantErr:  ErrUsernameRequired,
		},
		{
			name:     "whitespace username is not blank",
			username: "   ",
			password: "secret_sauce",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "padded username does not match",
			username: " standard_user ",
			password: "secret_sauce",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "locked out user",
			username: "locked_out_user",
			password: "secret_sauce",
			wantErr:  ErrLockedOut,
		},
		{
			name:     "locked out user with wrong password",
			username: "locked_out_user",
			password: "nope",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := service.Authenticate(tt.username, tt.password)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Authenticate() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && account.Username != tt.username {
				t.Errorf("expected account %s, got %s", tt.username, account.Username)
			}
			if tt.wantErr != nil && account != nil {
				t.Error("expected nil account when error occurs")
			}
		})
	}
}

func TestAuthService_ErrorMessages(t *testing.T) {
	// The suite's data file compares against these exact strings
	expected := map[error]string{
		ErrUsernameRequired:   "Epic sadface: Username is required",
		ErrPasswordRequired:   "Epic sadface: Password is required",
		ErrInvalidCredentials: "Epic sadface: Username and password do not match any user in this service",
		ErrLockedOut:          "Epic sadface: Sorry, this user has been locked out.",
	}
	for err, msg := range expected {
		if err.Error() != msg {
			t.Errorf("expected %q, got %q", msg, err.Error())
		}
	}
}
