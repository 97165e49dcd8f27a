package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/angeloszaimis/client-greeter/internal/identity"
	"github.com/angeloszaimis/client-greeter/internal/metrics"
)

// Middleware wraps an http.Handler with cross-cutting behavior.
type Middleware func(http.Handler) http.Handler

// A Route maps a method and path pattern to a handler. When Extractor is set
// the handler only runs after it yields a client id.
type Route struct {
	Method      string
	Path        string
	Handler     http.HandlerFunc
	Extractor   identity.Extractor
	Middlewares []Middleware
}

// Router is an http.Handler dispatching to registered Routes.
type Router struct {
	mux       *chi.Mux
	log       *slog.Logger
	collector *metrics.Collector
	newID     func() string
}

type Option func(*Router)

// WithMetrics reports every request and extraction rejection to c.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *Router) {
		r.collector = c
	}
}

// WithRequestIDGenerator replaces the uuid generator used for requests that
// arrive without an X-Request-ID header.
func WithRequestIDGenerator(gen func() string) Option {
	return func(r *Router) {
		r.newID = gen
	}
}

func New(log *slog.Logger, opts ...Option) *Router {
	r := &Router{
		mux:   chi.NewRouter(),
		log:   log,
		newID: uuid.NewString,
	}

	for _, opt := range opts {
		opt(r)
	}

	r.mux.Use(
		requestID(r.newID),
		instrument(r.log, r.collector),
		recoverer(r.log),
	)

	return r
}

// Handle registers a single Route.
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleRoutes registers routes, applying mws before each route's own
// middlewares and extractor.
func (r *Router) HandleRoutes(routes []Route, mws ...Middleware) {
	for _, route := range routes {
		stack := append([]Middleware{}, mws...)
		stack = append(stack, route.Middlewares...)
		if route.Extractor != nil {
			stack = append(stack, Middleware(identity.Middleware(route.Extractor, r.log, r.observeRejection)))
		}

		r.mux.Method(route.Method, route.Path, Chain(route.Handler, stack...))
	}
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) observeRejection(req *http.Request, status int) {
	r.collector.Emit(metrics.MetricEvent{
		Type:       metrics.EventExtractionRejected,
		Timestamp:  time.Now(),
		Route:      routePattern(req),
		StatusCode: status,
	})
}

// Chain applies middleware in order, returning the final wrapped handler.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// URLParam returns the named path parameter of the matched route.
func URLParam(r *http.Request, name string) string {
	return chi.URLParam(r, name)
}

const unmatchedRoute = "unmatched"

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
