package pages

import "github.com/playwright-community/playwright-go"

const TitleSelector = `[data-test="title"], .title`

// ProductsPage is the inventory screen shown after a successful login
type ProductsPage struct {
	page playwright.Page
}

func NewProductsPage(page playwright.Page) *ProductsPage {
	return &ProductsPage{page: page}
}

// Title locates the page heading
func (p *ProductsPage) Title() playwright.Locator {
	return p.page.Locator(TitleSelector).First()
}
