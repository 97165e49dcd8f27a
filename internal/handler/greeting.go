package handler

import (
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/client-greeter/internal/identity"
)

type Greeting struct {
	logger *slog.Logger
}

func NewGreeting(logger *slog.Logger) *Greeting {
	return &Greeting{logger: logger}
}

// Client greets the caller identified by the request's ClientID. It must be
// mounted behind an extractor; without one it answers 401.
func (g *Greeting) Client(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.FromContext(r.Context())
	if !ok {
		g.logger.ErrorContext(r.Context(), "client greeting reached without a client id",
			slog.String("path", r.URL.Path))
		writeStatus(w, http.StatusUnauthorized)
		return
	}

	g.logger.InfoContext(r.Context(), "Hello, World!", slog.String("client_id", id.String()))
	writeStatus(w, http.StatusOK)
}

// Plain greets without looking at the caller.
func (g *Greeting) Plain(w http.ResponseWriter, r *http.Request) {
	g.logger.InfoContext(r.Context(), "Hello, World!")
	writeStatus(w, http.StatusOK)
}

func writeStatus(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(http.StatusText(code)))
}
