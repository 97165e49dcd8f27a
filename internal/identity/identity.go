package identity

import (
	"context"
	"net/http"
	"sync/atomic"
)

// StubClientID is the identity yielded by Stub for every request.
const StubClientID ClientID = "1"

// ClientID identifies the caller of a request.
type ClientID string

func (c ClientID) String() string {
	return string(c)
}

// Extractor produces the ClientID of a request, or an error to reject it.
// Returning a *Rejection selects the response status; any other error is
// answered with 401 Unauthorized.
type Extractor interface {
	Extract(r *http.Request) (ClientID, error)
}

// ExtractorFunc adapts an ordinary function to the Extractor interface.
type ExtractorFunc func(r *http.Request) (ClientID, error)

func (f ExtractorFunc) Extract(r *http.Request) (ClientID, error) {
	return f(r)
}

// Fixed returns an Extractor that ignores the request and always yields id.
func Fixed(id ClientID) Extractor {
	return ExtractorFunc(func(*http.Request) (ClientID, error) {
		return id, nil
	})
}

// Stub is the placeholder extractor used until real authorization exists.
// It yields StubClientID regardless of the request.
var Stub = Fixed(StubClientID)

// Counting wraps an Extractor and counts how many times it runs.
type Counting struct {
	next  Extractor
	calls atomic.Int64
}

func NewCounting(next Extractor) *Counting {
	return &Counting{next: next}
}

func (c *Counting) Extract(r *http.Request) (ClientID, error) {
	c.calls.Add(1)
	return c.next.Extract(r)
}

// Calls reports the number of Extract invocations so far.
func (c *Counting) Calls() int64 {
	return c.calls.Load()
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id ClientID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the ClientID stored in ctx, if any.
func FromContext(ctx context.Context) (ClientID, bool) {
	id, ok := ctx.Value(contextKey{}).(ClientID)
	return id, ok
}
