// Package suite runs data-driven UI cases with a fresh session per attempt,
// retries, per-attempt recording and a screenshot when the last attempt fails.
package suite

import "fmt"

// Kind groups cases for filtering and reporting
type Kind string

const (
	KindSmoke      Kind = "smoke"
	KindValidation Kind = "validation"
)

// Case is the metadata of one test case. ID doubles as the data record key.
type Case struct {
	ID          string
	Title       string
	Story       string
	Owner       string
	Description string
	Kind        Kind
	// Retries is the number of extra attempts after a failure. Zero uses the
	// harness default; NoRetries runs the case exactly once.
	Retries int
}

// NoRetries disables retrying for a single case
const NoRetries = -1

func (c Case) String() string {
	return fmt.Sprintf("%s %s", c.ID, c.Title)
}
