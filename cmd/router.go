package main

import (
	"log/slog"
	"net/http"

	"github.com/angeloszaimis/client-greeter/internal/handler"
	"github.com/angeloszaimis/client-greeter/internal/identity"
	"github.com/angeloszaimis/client-greeter/internal/metrics"
	"github.com/angeloszaimis/client-greeter/internal/router"
)

const (
	clientRoute  = "/{clientID}"
	plainRoute   = "/2"
	metricsRoute = "/debug/metrics"
)

func setupRouter(log *slog.Logger, extractor identity.Extractor, collector *metrics.Collector) *router.Router {
	greeting := handler.NewGreeting(log)

	r := router.New(log, router.WithMetrics(collector))
	r.HandleRoutes([]router.Route{
		{Method: http.MethodGet, Path: clientRoute, Handler: greeting.Client, Extractor: extractor},
		{Method: http.MethodGet, Path: plainRoute, Handler: greeting.Plain},
		{Method: http.MethodGet, Path: metricsRoute, Handler: collector.Handler()},
	})

	return r
}
