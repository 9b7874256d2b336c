// Package pages wraps the screens of the login flow in page objects.
//
// Page objects hold a sticky error: the first failing step is kept and every
// later step becomes a no-op, so a chain like
//
//	login.Open().TypeUsername(u).TypePassword(p).SubmitLogin()
//
// never types into a page that failed to load. Read the outcome with Err.
package pages

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

const (
	UsernameSelector    = `[data-test="username"]`
	PasswordSelector    = `[data-test="password"]`
	LoginButtonSelector = `[data-test="login-button"]`
	ErrorSelector       = `[data-test="error"]`
)

type LoginPage struct {
	page    playwright.Page
	baseURL string
	err     error
}

func NewLoginPage(page playwright.Page, baseURL string) *LoginPage {
	return &LoginPage{page: page, baseURL: strings.TrimRight(baseURL, "/")}
}

// URL is the address the login screen lives at
func (p *LoginPage) URL() string {
	return p.baseURL + "/"
}

// Err returns the first error recorded by a chained step
func (p *LoginPage) Err() error {
	return p.err
}

func (p *LoginPage) Open() *LoginPage {
	if p.err != nil {
		return p
	}
	url := p.URL()
	resp, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		p.err = &NavigationError{URL: url, Err: err}
		return p
	}
	if resp != nil && resp.Status() >= 400 {
		p.err = &NavigationError{URL: url, Status: resp.Status()}
	}
	return p
}

func (p *LoginPage) TypeUsername(username string) *LoginPage {
	return p.fill(UsernameSelector, username)
}

func (p *LoginPage) TypePassword(password string) *LoginPage {
	return p.fill(PasswordSelector, password)
}

// SubmitLogin clicks the login button. It does not check the outcome.
func (p *LoginPage) SubmitLogin() *LoginPage {
	if p.err != nil {
		return p
	}
	if err := p.page.Locator(LoginButtonSelector).Click(); err != nil {
		p.err = actionError("click", LoginButtonSelector, err)
	}
	return p
}

// LoginAs opens the screen, fills both fields and submits. The returned
// products page is only meaningful when the credentials are accepted.
func (p *LoginPage) LoginAs(username, password string) (*ProductsPage, error) {
	if err := p.Open().TypeUsername(username).TypePassword(password).SubmitLogin().Err(); err != nil {
		return nil, err
	}
	return NewProductsPage(p.page), nil
}

// ErrorMessage locates the error banner. Resolving it is left to the caller.
func (p *LoginPage) ErrorMessage() playwright.Locator {
	return p.page.Locator(ErrorSelector)
}

// CurrentURL reports where the page is now
func (p *LoginPage) CurrentURL() string {
	return p.page.URL()
}

// CaptureScreenshot returns a full page PNG of whatever the page shows now
func (p *LoginPage) CaptureScreenshot() ([]byte, error) {
	return p.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
		Type:     playwright.ScreenshotTypePng,
	})
}

func (p *LoginPage) fill(selector, value string) *LoginPage {
	if p.err != nil {
		return p
	}
	if err := p.page.Locator(selector).Fill(value); err != nil {
		p.err = actionError("fill", selector, err)
	}
	return p
}
