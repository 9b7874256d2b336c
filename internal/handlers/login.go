package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/phuslu/log"

	"github.com/swaglabs/loginsuite/internal/services"
)

// SessionCookie carries the session token of a logged-in browser
const SessionCookie = "session_token"

// InventoryPath is where a successful login lands
const InventoryPath = "/inventory.html"

// LoginHandler serves and processes the login form
type LoginHandler struct {
	template *template.Template
	auth     services.AuthService
	sessions services.SessionStore
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(templatePath string, auth services.AuthService, sessions services.SessionStore) (*LoginHandler, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &LoginHandler{
		template: tmpl,
		auth:     auth,
		sessions: sessions,
	}, nil
}

// LoginData represents the data for the login template
type LoginData struct {
	Username string
	Error    string
}

// ServeHTTP handles GET and POST on the login page
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, LoginData{Error: deniedMessage(r.URL.Query().Get("next"))})
	case http.MethodPost:
		h.login(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoginHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.PostForm.Get("user-name")
	password := r.PostForm.Get("password")

	account, err := h.auth.Authenticate(username, password)
	if err != nil {
		log.Info().Str("username", username).Str("reason", err.Error()).Msg("login rejected")
		h.render(w, LoginData{Username: username, Error: err.Error()})
		return
	}

	token := h.sessions.Create(account.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Str("username", account.Username).Msg("login accepted")
	http.Redirect(w, r, InventoryPath, http.StatusSeeOther)
}

func (h *LoginHandler) render(w http.ResponseWriter, data LoginData) {
	if err := h.template.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("error rendering login template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// deniedMessage explains why the user was bounced back to the login page
func deniedMessage(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return ""
	}
	return fmt.Sprintf("Epic sadface: You can only access '%s' when you are logged in.", next)
}
