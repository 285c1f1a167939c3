package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/geovannedomonte/vaiart/internal/auth"
	"github.com/geovannedomonte/vaiart/internal/catalog"
	ordercontroller "github.com/geovannedomonte/vaiart/internal/order/controller"
	"github.com/geovannedomonte/vaiart/internal/scheduling"
)

type Controllers struct {
	Auth         *auth.Module
	Catalog      *catalog.Controller
	Orders       *ordercontroller.OrderController
	Appointments *scheduling.Controller
}

func NewRouter(c Controllers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", c.Auth.Controller.HandleRegister)
			r.Post("/login", c.Auth.Controller.HandleLogin)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", c.Catalog.HandleList)
			r.Get("/available", c.Catalog.HandleListAvailable)
			r.Get("/search", c.Catalog.HandleSearch)
			r.Get("/{id}", c.Catalog.HandleGet)

			r.Group(func(r chi.Router) {
				r.Use(c.Auth.Middleware.RequireAuth)
				r.Use(c.Auth.Middleware.RequireAdmin)
				r.Post("/", c.Catalog.HandleCreate)
				r.Put("/{id}", c.Catalog.HandleUpdate)
				r.Delete("/{id}", c.Catalog.HandleDelete)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(c.Auth.Middleware.RequireAuth)

			r.Post("/", c.Orders.HandleCreate)
			r.Get("/{id}", c.Orders.HandleGet)
			r.Get("/customer/{email}", c.Orders.HandleListByCustomer)

			r.Group(func(r chi.Router) {
				r.Use(c.Auth.Middleware.RequireAdmin)
				r.Get("/", c.Orders.HandleList)
				r.Put("/{id}/status", c.Orders.HandleUpdateStatus)
				r.Put("/{id}/transaction", c.Orders.HandleUpdateTransaction)
			})
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", c.Appointments.HandleCreate)
			r.Get("/", c.Appointments.HandleList)
			r.Get("/range", c.Appointments.HandleRange)

			r.Group(func(r chi.Router) {
				r.Use(c.Auth.Middleware.RequireAuth)
				r.Use(c.Auth.Middleware.RequireAdmin)
				r.Put("/{id}", c.Appointments.HandleUpdate)
				r.Delete("/{id}", c.Appointments.HandleDelete)
			})
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
