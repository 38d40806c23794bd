package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Route("/stores/{storeId}/lnurl/{cryptoCode}/pay", func(r chi.Router) {
		r.Get("/{invoiceId}", h.PayRequest)
	})

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Route("/internal", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/invoices", h.CreateInvoice)
			r.Get("/payment-methods", h.PaymentMethods)
		})
	})

	return mux
}
