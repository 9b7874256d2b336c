package dataset

import (
	"fmt"

	"github.com/swaglabs/loginsuite/internal/models"
)

// Credential file columns
const (
	ColumnCaseID       = "test_case_id"
	ColumnUsername     = "username"
	ColumnPassword     = "password"
	ColumnErrorMessage = "error_message"
)

// LoginFile is the data file backing the login cases
const LoginFile = "login.csv"

// Credentials is the dataset the login cases draw from
type Credentials = Dataset[models.Credential]

// LoadCredentials reads a credential file
func LoadCredentials(path string) (*Credentials, error) {
	return Load(path, credentialID, MapCredential)
}

// MapCredential maps one row onto a Credential
func MapCredential(row Row) (models.Credential, error) {
	var c models.Credential
	var err error

	if c.ID, err = row.Value(ColumnCaseID); err != nil {
		return c, err
	}
	if c.Username, err = row.Value(ColumnUsername); err != nil {
		return c, err
	}
	if c.Password, err = row.Value(ColumnPassword); err != nil {
		return c, err
	}
	if c.ErrorMessage, err = row.Value(ColumnErrorMessage); err != nil {
		return c, err
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("line %d: %w", row.Line, err)
	}
	return c, nil
}

func credentialID(c models.Credential) string {
	return c.ID
}
