package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/angeloszaimis/client-greeter/config"
)

// ErrStartup wraps every failure that prevents the server from accepting
// connections: an invalid address or a failed bind.
var ErrStartup = errors.New("http server startup failed")

var errNotListening = errors.New("listener not bound")

// Server wraps http.Server with address validation, an explicit bind step
// and graceful shutdown.
type Server struct {
	server *http.Server

	mu       sync.Mutex
	listener net.Listener
}

// New creates a new HTTP server with the given address and handler.
// The address is validated before creating the server.
func New(addr string, handler http.Handler) (*Server, error) {
	if err := config.ValidateHostPort(addr); err != nil {
		return nil, fmt.Errorf("%w: address %q: %w", ErrStartup, addr, err)
	}

	srv := &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}

	return srv, nil
}

// Listen binds the listening socket. Bind failures are wrapped in ErrStartup.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return nil
	}

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStartup, err)
	}

	s.listener = ln
	return nil
}

// Addr reports the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Serve accepts connections on the bound listener until Shutdown.
// Returns an error unless the server is shut down cleanly.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	if ln == nil {
		return fmt.Errorf("%w: %w", ErrStartup, errNotListening)
	}

	err := s.server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Start binds and serves.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}

	return s.Serve()
}

// Shutdown gracefully shuts down the server with a 5-second timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
