// Package browser owns the shared browser process and hands out isolated sessions.
package browser

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phuslu/log"
	"github.com/playwright-community/playwright-go"

	"github.com/swaglabs/loginsuite/internal/config"
)

// Viewport used for every session so screenshots are comparable
var Viewport = playwright.Size{Width: 1280, Height: 720}

// Engine is one running browser shared by all sessions of a test binary
type Engine struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     *config.SuiteConfig
}

// Launch starts playwright and the configured browser
func Launch(cfg *config.SuiteConfig) (*Engine, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browserType, err := selectBrowserType(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	b, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo.Milliseconds())),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", cfg.Browser, err)
	}

	log.Info().Str("browser", cfg.Browser).Str("version", b.Version()).Bool("headless", cfg.Headless).Msg("browser launched")

	return &Engine{pw: pw, browser: b, cfg: cfg}, nil
}

// Install downloads the playwright driver and the named browser
func Install(browserName string) error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: []string{browserName}}); err != nil {
		return fmt.Errorf("could not install playwright %s: %w", browserName, err)
	}
	return nil
}

func selectBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "", "chromium":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}

// NewSession creates a fresh browsing context with a single page. Nothing is
// shared with other sessions: cookies and storage start empty.
func (e *Engine) NewSession() (*Session, error) {
	ctx, err := e.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &Viewport,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create context: %w", err)
	}

	ctx.SetDefaultTimeout(e.cfg.TimeoutMillis())
	ctx.SetDefaultNavigationTimeout(e.cfg.TimeoutMillis())

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	s := &Session{
		ID:      uuid.New().String(),
		Context: ctx,
		Page:    page,
	}
	log.Debug().Str("session", s.ID).Msg("session opened")
	return s, nil
}

// Close stops the browser and the playwright driver
func (e *Engine) Close() error {
	var errs []error
	if err := e.browser.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close browser: %w", err))
	}
	if err := e.pw.Stop(); err != nil {
		errs = append(errs, fmt.Errorf("stop playwright: %w", err))
	}
	return errors.Join(errs...)
}
