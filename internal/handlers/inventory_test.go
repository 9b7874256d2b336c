package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/swaglabs/loginsuite/internal/services"
)

func TestInventoryHandler_ServeHTTP(t *testing.T) {
	sessions := services.NewMemorySessionStore(time.Hour)
	validToken := sessions.Create("standard_user")

	tests := []struct {
		name             string
		method           string
		cookie           string
		expectedStatus   int
		expectedLocation string
		checkContent     []string
	}{
		{
			name:           "logged in user sees products",
			method:         http.MethodGet,
			cookie:         validToken,
			expectedStatus: http.StatusOK,
			checkContent:   []string{`<span class="title" data-test="title">Products</span>`, "Sauce Labs Backpack", "$29.99"},
		},
		{
			name:             "anonymous user is sent back to login",
			method:           http.MethodGet,
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/?next=%2Finventory.html",
		},
		{
			name:             "unknown token is sent back to login",
			method:           http.MethodGet,
			cookie:           "forged",
			expectedStatus:   http.StatusSeeOther,
			expectedLocation: "/?next=%2Finventory.html",
		},
		{
			name:           "method not allowed - POST",
			method:         http.MethodPost,
			cookie:         validToken,
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := NewInventoryHandler(inventoryTemplate, sessions, DefaultProducts)
			if err != nil {
				t.Fatalf("Failed to create handler: %v", err)
			}

			req := httptest.NewRequest(tt.method, InventoryPath, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedLocation != "" && w.Header().Get("Location") != tt.expectedLocation {
				t.Errorf("expected redirect to %s, got %s", tt.expectedLocation, w.Header().Get("Location"))
			}
			body := w.Body.String()
			for _, content := range tt.checkContent {
				if !strings.Contains(body, content) {
					t.Errorf("expected response to contain '%s'", content)
				}
			}
		})
	}
}

func TestInventoryHandler_TemplateExecutionError(t *testing.T) {
	sessions := services.NewMemorySessionStore(time.Hour)
	token := sessions.Create("standard_user")

	tmpl, err := template.New("inventory.html").Parse("{{.InvalidField.NonExistent}}")
	if err != nil {
		t.Fatalf("Failed to create test template: %v", err)
	}

	handler := &InventoryHandler{template: tmpl, sessions: sessions}

	req := httptest.NewRequest(http.MethodGet, InventoryPath, nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	sessions := services.NewMemorySessionStore(time.Hour)
	token := sessions.Create("standard_user")
	handler := NewLogoutHandler(sessions)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", w.Code)
	}
	if _, ok := sessions.Lookup(token); ok {
		t.Error("expected session to be removed on logout")
	}

	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestLoginThenInventory(t *testing.T) {
	login, sessions := newTestLoginHandler(t)
	inventory, err := NewInventoryHandler(inventoryTemplate, sessions, DefaultProducts)
	if err != nil {
		t.Fatalf("Failed to create handler: %v", err)
	}

	w := postLogin(login, "standard_user", "secret_sauce")
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, InventoryPath, nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	inventory.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `data-test="user">standard_user<`) {
		t.Error("expected logged in username on inventory page")
	}
}
