// Package router maps method and path patterns to handlers on top of chi.
//
// Every request passes through the same stack: request id, request logging
// and metrics, then panic recovery. Routes that declare an identity.Extractor run
// it before their handler; a rejection never reaches the handler.
//
// Matching follows chi: static segments beat parameters, a parameter never
// matches an empty segment, an unknown path answers 404 and a known path
// requested with an unregistered method answers 405 with an Allow header.
package router
