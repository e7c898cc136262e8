package http

import (
	stdhttp "net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/getsentry/sentry-go"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"postsite/app/internal/site"
)

// Options configures the HTTP server wiring.
type Options struct {
	Renderer  *site.Renderer
	Exporter  *site.Exporter
	SourceURL string
	Logger    *logrus.Logger
	SentryHub *sentry.Hub
}

// Server wires the HTTP transport layer via Huma. It serves pre-rendered
// documents from the export directory and falls back to on-demand rendering
// for identifiers outside the static set.
type Server struct {
	api       huma.API
	mux       *stdhttp.ServeMux
	renderer  *site.Renderer
	exporter  *site.Exporter
	sourceURL string
	logger    *logrus.Logger
	sentry    *sentry.Hub
}

// NewServer constructs the HTTP server.
func NewServer(opts Options) (*Server, error) {
	if opts.Renderer == nil {
		return nil, eris.New("renderer is required")
	}

	mux := stdhttp.NewServeMux()
	config := huma.DefaultConfig("Postsite", "1.0.0")

	api := humago.New(mux, config)

	srv := &Server{
		api:       api,
		mux:       mux,
		renderer:  opts.Renderer,
		exporter:  opts.Exporter,
		sourceURL: opts.SourceURL,
		logger:    opts.Logger,
		sentry:    opts.SentryHub,
	}

	srv.registerMiddlewares()
	srv.registerRoutes()

	return srv, nil
}

// Handler exposes the underlying HTTP handler for wiring into the application.
func (s *Server) Handler() stdhttp.Handler {
	return s.mux
}

// API exposes the underlying Huma API instance.
func (s *Server) API() huma.API {
	return s.api
}

func (s *Server) registerMiddlewares() {
	s.api.UseMiddleware(
		s.sentryMiddleware(),
		s.recoveryMiddleware(),
		s.requestIDMiddleware(),
		s.loggingMiddleware(),
	)
}

func (s *Server) registerRoutes() {
	s.registerPostRoute()
	s.registerHealthRoute()
}
