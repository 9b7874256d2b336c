package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/phuslu/log"

	"github.com/swaglabs/loginsuite/internal/config"
	"github.com/swaglabs/loginsuite/internal/handlers"
	"github.com/swaglabs/loginsuite/internal/models"
	"github.com/swaglabs/loginsuite/internal/services"
)

// SessionTTL bounds how long a stand-in login session stays valid
const SessionTTL = time.Hour

// ServerDependencies holds all dependencies needed for the server
type ServerDependencies struct {
	ServerConfig     config.ServerConfig
	LoginHandler     http.Handler
	InventoryHandler http.Handler
	LogoutHandler    http.Handler
	StaticDir        string
}

// BuildServerDependencies wires the stand-in login application
func BuildServerDependencies(cfg config.ServerConfig) (ServerDependencies, error) {
	deps := ServerDependencies{
		ServerConfig: cfg,
		StaticDir:    filepath.Join(cfg.TemplatesDir, "..", "static"),
	}

	sessions := services.NewMemorySessionStore(SessionTTL)
	auth := services.NewAuthService(services.NewMemoryAccounts(models.DefaultAccounts()))

	loginHandler, err := handlers.NewLoginHandler(filepath.Join(cfg.TemplatesDir, "login.html"), auth, sessions)
	if err != nil {
		return deps, fmt.Errorf("failed to create login handler: %w", err)
	}
	deps.LoginHandler = loginHandler

	inventoryHandler, err := handlers.NewInventoryHandler(filepath.Join(cfg.TemplatesDir, "inventory.html"), sessions, handlers.DefaultProducts)
	if err != nil {
		return deps, fmt.Errorf("failed to create inventory handler: %w", err)
	}
	deps.InventoryHandler = inventoryHandler

	deps.LogoutHandler = handlers.NewLogoutHandler(sessions)

	return deps, nil
}

// RunServe starts the stand-in login application and blocks until a shutdown signal
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/", deps.LoginHandler)
	mux.Handle(handlers.InventoryPath, deps.InventoryHandler)
	mux.Handle("/logout", deps.LogoutHandler)
	if deps.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticDir))))
	}

	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("login app listening")
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	return listener, server, nil
}

// BaseURL returns the loopback URL a browser can use to reach the listener
func BaseURL(listener net.Listener) string {
	return fmt.Sprintf("http://127.0.0.1:%d", listener.Addr().(*net.TCPAddr).Port)
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// A nil channel is replaced by one registered for SIGINT and SIGTERM.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	log.Info().Str("signal", sig.String()).Msg("shutting down login app")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not surface listener close errors, so this branch is effectively unreachable.
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Info().Msg("login app stopped")
	return nil
}
