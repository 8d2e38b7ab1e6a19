package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/qrform/handler"
	"github.com/dmitrymomot/qrform/pkg/binder"
	"github.com/dmitrymomot/qrform/pkg/httpserver"
	"github.com/dmitrymomot/qrform/pkg/i18n"
	"github.com/dmitrymomot/qrform/pkg/requestid"
)

// Pinger is implemented by encoders that support a readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps are the collaborators of the HTTP surface.
type RouterDeps struct {
	Service    *Service
	Translator *i18n.Translator
	Logger     *slog.Logger
	// Gatherer serves /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	// Metrics records request metrics; nil disables them.
	Metrics *HTTPMetrics
}

// NewRouter mounts the page, the generate endpoint, probes and metrics.
func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	tr := deps.Translator

	translate := func(ctx context.Context, key, fallback string) string {
		return tr.Td(i18n.GetLocale(ctx), key, fallback)
	}
	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage(translate),
		ErrorToast: ErrorToast,
		Translate:  translate,
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(tr.SupportedLanguages()), tr.DefaultLanguage()))
	r.Use(requestLogger(log))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Get("/", handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](deps.Service.Page),
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))
	r.Post("/generate", handler.Wrap(handler.HandlerFunc[handler.Context, GenerateRequest](deps.Service.Generate),
		handler.WithBinders[handler.Context, GenerateRequest](binder.Signals(), binder.Form()),
		handler.WithErrorHandler[handler.Context, GenerateRequest](errorHandler),
	))

	r.Get("/healthz", httpserver.Liveness())
	var checks []httpserver.Check
	if p, ok := deps.Service.encoder.(Pinger); ok {
		checks = append(checks, httpserver.Check{Name: "encoder", Fn: p.Ping})
	}
	r.Get("/readyz", httpserver.Readiness(log, checks...))

	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	errorRoute := func(err handler.HTTPError) http.HandlerFunc {
		return handler.Wrap(handler.HandlerFunc[handler.Context, struct{}](func(handler.Context, struct{}) handler.Response {
			return handler.Error(err)
		}), handler.WithErrorHandler[handler.Context, struct{}](errorHandler))
	}
	r.NotFound(errorRoute(handler.ErrNotFound))
	r.MethodNotAllowed(errorRoute(handler.ErrMethodNotAllowed))

	return r
}
