package pages

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// NavigationError means the page could not be reached or did not load in time
type NavigationError struct {
	URL    string
	Status int
	Err    error
}

func (e *NavigationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("navigate to %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("navigate to %s: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ElementTimeoutError means an element did not become actionable before the timeout
type ElementTimeoutError struct {
	Selector string
	Action   string
	Err      error
}

func (e *ElementTimeoutError) Error() string {
	return fmt.Sprintf("%s %s: timed out: %v", e.Action, e.Selector, e.Err)
}

func (e *ElementTimeoutError) Unwrap() error { return e.Err }

// actionError classifies a failed element action
func actionError(action, selector string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) {
		return &ElementTimeoutError{Selector: selector, Action: action, Err: err}
	}
	return fmt.Errorf("%s %s: %w", action, selector, err)
}
