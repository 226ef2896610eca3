package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wip-service/app/src/domain"
	"wip-service/app/src/infra"
)

// Server exposes the HTTP transport for the release info application.
type Server struct {
	handler http.Handler
}

// NewServer constructs an HTTP server with the filter chain and metrics
// middleware ahead of the routed handlers.
func NewServer(provider domain.VersionProvider, clock domain.Clock, logger *infra.Logger) *Server {
	router := chi.NewRouter()

	router.Use(infra.HTTPMiddleware(func(r *http.Request) string {
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				return pattern
			}
		}
		return r.URL.Path
	}))
	router.Use(infra.FilterChain(
		infra.NamedFilter("Filter1", logger),
		appVersionFilterer(provider),
		infra.NamedFilter("Filter2", logger),
		infra.NamedFilter("TrailingFilter", logger),
	))

	handler := &handler{provider: provider, clock: clock, logger: logger}
	registerRoutes(router, handler)

	return &Server{handler: router}
}

// appVersionFilterer answers /AppVersion before routing, the way the rest of
// the chain only observes requests.
func appVersionFilterer(provider domain.VersionProvider) infra.Filterer {
	return func(r *http.Request) *infra.FilteredResponse {
		if r.URL.Path != "/AppVersion" {
			return nil
		}
		infra.VersionRequestsTotal.Inc()
		return infra.OKResponse(provider.Version(r.Context()).String())
	}
}

// Router returns the configured HTTP handler for reuse in tests or external HTTP servers.
func (s *Server) Router() http.Handler {
	return s.handler
}

// ServeHTTP allows Server to satisfy the http.Handler interface directly.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
