// Package assistant собирает HTTP-приложение ассистента: хранилище, кеш, сервисы и маршруты.
package assistant

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация swagger-спецификации для /docs.
	_ "github.com/magabrotheeeer/personal-assistant/docs"
	"github.com/magabrotheeeer/personal-assistant/internal/config"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/contacts/create"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/contacts/list"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/contacts/read"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/contacts/remove"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/contacts/upcoming"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/health"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/tools/birthdays"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/tools/days"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/tools/phone"
	"github.com/magabrotheeeer/personal-assistant/internal/http/handlers/tools/ticket"
	"github.com/magabrotheeeer/personal-assistant/internal/http/middlewarectx"
	"github.com/magabrotheeeer/personal-assistant/internal/lib/metrics"
	"github.com/magabrotheeeer/personal-assistant/internal/services/contacts"
	"github.com/magabrotheeeer/personal-assistant/internal/services/toolkit"
)

// Deps — зависимости, необходимые для регистрации маршрутов.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Limits   config.RateLimit
	Toolkit  *toolkit.Service
	Contacts *contacts.Service
	DB       health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware(d.Metrics),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/tools", func(r chi.Router) {
			r.Post("/days", days.New(d.Logger, d.Toolkit).ServeHTTP)
			r.Post("/phone", phone.New(d.Logger, d.Toolkit).ServeHTTP)
			r.Post("/birthdays", birthdays.New(d.Logger, d.Toolkit).ServeHTTP)
			r.With(middlewarectx.RateLimitMiddleware(d.Logger, d.Limits)).
				Post("/ticket", ticket.New(d.Logger, d.Toolkit).ServeHTTP)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", create.New(d.Logger, d.Contacts).ServeHTTP)
			r.Get("/", list.New(d.Logger, d.Contacts).ServeHTTP)
			r.Get("/birthdays/upcoming", upcoming.New(d.Logger, d.Contacts).ServeHTTP)
			r.Get("/{id}", read.New(d.Logger, d.Contacts).ServeHTTP)
			r.Delete("/{id}", remove.New(d.Logger, d.Contacts).ServeHTTP)
		})
	})

	r.Get("/health", health.New(d.Logger, d.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
