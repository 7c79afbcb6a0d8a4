package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jcmexdev/payments-bff/internal/bff/infra/httpx/middlewares"
)

// NewRouter mounts the BFF routes. metrics may be nil to skip /metrics.
func NewRouter(handler *Handler, metrics prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/payments", handler.CreatePayment)
	r.Get("/healthz", handler.Health)
	if metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(metrics, promhttp.HandlerOpts{}))
	}
	return otelhttp.NewHandler(r, "payments-bff")
}
