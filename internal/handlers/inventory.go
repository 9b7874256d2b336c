package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/phuslu/log"

	"github.com/swaglabs/loginsuite/internal/services"
)

// Product represents an inventory item
type Product struct {
	Name        string
	Description string
	Price       string
}

// DefaultProducts is the catalogue shown after login
var DefaultProducts = []Product{
	{Name: "Sauce Labs Backpack", Description: "Carry all the things.", Price: "$29.99"},
	{Name: "Sauce Labs Bike Light", Description: "A red light isn't the desired state in testing.", Price: "$9.99"},
	{Name: "Sauce Labs Bolt T-Shirt", Description: "Get your testing superhero on.", Price: "$15.99"},
}

// InventoryHandler renders the post-login products page
type InventoryHandler struct {
	template *template.Template
	sessions services.SessionStore
	products []Product
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(templatePath string, sessions services.SessionStore, products []Product) (*InventoryHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &InventoryHandler{
		template: tmpl,
		sessions: sessions,
		products: products,
	}, nil
}

// InventoryData represents the data for the inventory template
type InventoryData struct {
	Title    string
	Username string
	Products []Product
}

// ServeHTTP handles the GET /inventory.html request
func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username, ok := sessionUser(r, h.sessions)
	if !ok {
		http.Redirect(w, r, "/?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
		return
	}

	data := InventoryData{
		Title:    "Products",
		Username: username,
		Products: h.products,
	}

	if err := h.template.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("error rendering inventory template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// LogoutHandler ends the current session
type LogoutHandler struct {
	sessions services.SessionStore
}

// NewLogoutHandler creates a new LogoutHandler
func NewLogoutHandler(sessions services.SessionStore) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// ServeHTTP handles the POST /logout request
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c, err := r.Cookie(SessionCookie); err == nil {
		h.sessions.Delete(c.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func sessionUser(r *http.Request, sessions services.SessionStore) (string, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return "", false
	}
	return sessions.Lookup(c.Value)
}
