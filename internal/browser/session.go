package browser

import (
	"fmt"

	"github.com/phuslu/log"
	"github.com/playwright-community/playwright-go"
)

// Session is an isolated browsing context with one page, owned by one test attempt
type Session struct {
	ID      string
	Context playwright.BrowserContext
	Page    playwright.Page
}

// Close destroys the context and every page in it
func (s *Session) Close() error {
	if err := s.Context.Close(); err != nil {
		return fmt.Errorf("close session %s: %w", s.ID, err)
	}
	log.Debug().Str("session", s.ID).Msg("session closed")
	return nil
}
