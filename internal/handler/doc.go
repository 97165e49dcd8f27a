// Package handler implements the greeting endpoints of the service.
// Handlers only log and answer with a fixed status; the client identity, when
// needed, is read from the request context where the router's extractor put it.
package handler
