package models

import (
	"errors"
	"strings"
)

// Credential is one row of login test input and its expected outcome
type Credential struct {
	ID           string
	Username     string
	Password     string
	ErrorMessage string
}

// ErrMissingCaseID is returned when a credential row has no test case id
var ErrMissingCaseID = errors.New("credential test case id cannot be empty")

// Validate checks the invariants of a loaded credential
func (c Credential) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrMissingCaseID
	}
	return nil
}

// ExpectsError reports whether the row describes a rejected login
func (c Credential) ExpectsError() bool {
	return c.ErrorMessage != ""
}
