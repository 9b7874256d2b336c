// Package expect turns playwright web-first assertions into typed errors the
// suite can classify and report.
package expect

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/swaglabs/loginsuite/internal/pages"
)

// AssertionMismatchError means the element resolved but its content differed
type AssertionMismatchError struct {
	Selector string
	Expected string
	Actual   string
	Err      error
}

func (e *AssertionMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %q, got %q", e.Selector, e.Expected, e.Actual)
}

func (e *AssertionMismatchError) Unwrap() error { return e.Err }

// readTimeout bounds the diagnostic read after a failed assertion, in ms
const readTimeout = 1000

// Expect waits up to its timeout for each condition to hold
type Expect struct {
	assertions playwright.PlaywrightAssertions
	timeout    float64
}

func New(timeout time.Duration) *Expect {
	ms := float64(timeout.Milliseconds())
	return &Expect{
		assertions: playwright.NewPlaywrightAssertions(ms),
		timeout:    ms,
	}
}

// HasText passes when the element's full text equals want
func (e *Expect) HasText(loc playwright.Locator, selector, want string) error {
	err := e.assertions.Locator(loc).ToHaveText(want)
	if err == nil {
		return nil
	}

	// the assertion error only carries a formatted message, so read the
	// current text to tell a missing element from a wrong one
	actual, readErr := currentText(loc, selector, err)
	if readErr != nil {
		return readErr
	}
	return &AssertionMismatchError{
		Selector: selector,
		Expected: want,
		Actual:   actual,
		Err:      err,
	}
}

// Hidden passes when the element is absent or not visible
func (e *Expect) Hidden(loc playwright.Locator, selector string) error {
	if err := e.assertions.Locator(loc).ToBeHidden(); err != nil {
		actual, readErr := currentText(loc, selector, err)
		if readErr != nil {
			return readErr
		}
		return &AssertionMismatchError{
			Selector: selector,
			Expected: "<hidden>",
			Actual:   actual,
			Err:      err,
		}
	}
	return nil
}

// HasURL passes when the page address equals want
func (e *Expect) HasURL(page playwright.Page, want string) error {
	if err := e.assertions.Page(page).ToHaveURL(want); err != nil {
		return &AssertionMismatchError{
			Selector: "page url",
			Expected: want,
			Actual:   page.URL(),
			Err:      err,
		}
	}
	return nil
}

// currentText reads what the element shows now. cause is the failed
// assertion and stays in the chain of any read error.
func currentText(loc playwright.Locator, selector string, cause error) (string, error) {
	actual, err := loc.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(readTimeout),
	})
	if err == nil {
		return strings.TrimSpace(actual), nil
	}

	err = errors.Join(cause, err)
	if errors.Is(err, playwright.ErrTimeout) {
		return "", &pages.ElementTimeoutError{Selector: selector, Action: "read text of", Err: err}
	}
	return "", fmt.Errorf("read text of %s: %w", selector, err)
}
