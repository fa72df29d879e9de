package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kisansetu-backend/pkg/metrics"
)

type Handlers struct {
	Root        http.HandlerFunc
	SignIn      http.HandlerFunc
	CreateOrder http.HandlerFunc
	ListOrders  http.HandlerFunc
	GetOrder    http.HandlerFunc
}

// NewRouter wires the public storefront routes and the token-gated admin
// routes. adminToken is the configured shared secret.
func NewRouter(h *Handlers, adminToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware("kisansetu-backend"))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", h.Root)
	r.Route("/api", func(r chi.Router) {
		r.Post("/signin", h.SignIn)
		r.Post("/orders", h.CreateOrder)
		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin(adminToken))
			r.Get("/orders", h.ListOrders)
			r.Get("/orders/{id}", h.GetOrder)
		})
	})
	return r
}
