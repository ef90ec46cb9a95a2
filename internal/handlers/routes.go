package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// LoanRoutes groups the handlers mounted under /loans.
type LoanRoutes struct {
	List    http.HandlerFunc
	Create  http.HandlerFunc
	Active  http.HandlerFunc
	ByUser  http.HandlerFunc
	History http.HandlerFunc
	Get     http.HandlerFunc
	Update  http.HandlerFunc
	Delete  http.HandlerFunc
}

// RegisterLoanRoutes registers the loan routes.
// Fixed segments go first so they are never read as a loan id.
func RegisterLoanRoutes(r chi.Router, h LoanRoutes) {
	r.Route("/loans", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/active", h.Active)
		r.Get("/user/{id}", h.ByUser)
		r.Get("/history/{isbn}", h.History)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// RegisterBookRoutes registers the book report routes.
func RegisterBookRoutes(r chi.Router, mostLoaned http.HandlerFunc) {
	r.Get("/books/most-loaned", mostLoaned)
}

// RegisterUserRoutes registers the user report routes.
func RegisterUserRoutes(r chi.Router, withOverdue http.HandlerFunc) {
	r.Get("/users/with-overdue", withOverdue)
}

// NewHelloHandler answers the root path with a liveness message.
func NewHelloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello world! The library's API is working."))
	}
}
