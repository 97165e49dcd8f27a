// Package httpserver runs the service's http.Server. Binding is a separate
// step from serving so that a failure to claim the listen address surfaces
// as ErrStartup before any request is accepted.
package httpserver
