// Package identity defines the per-request client identity extraction step.
//
// An Extractor inspects an inbound request and either yields a ClientID or
// rejects the request with an HTTP status. Middleware runs an Extractor ahead
// of a handler and stores the result in the request context, so routing and
// handlers never depend on how the identity was obtained.
//
// Fixed is the only extractor shipped today. It performs no authorization and
// always yields the same identity; replace it with a real implementation
// without touching the router or the handlers.
package identity
