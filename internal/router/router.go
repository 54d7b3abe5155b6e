package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Totarae/PageAnalyzer/internal/handlers"
	"github.com/Totarae/PageAnalyzer/internal/middleware"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(handler.Recoverer)
	r.Use(middleware.GzipMiddleware) // Gzip-сжатие

	r.Get("/", handler.Index)
	r.Get("/ping", handler.Ping)

	r.Route("/urls", func(r chi.Router) {
		r.Post("/", handler.CreateURL)
		r.Get("/", handler.ListURLs)
		r.Get("/{id}", handler.ShowURL)
		r.Post("/{id}/checks", handler.CheckURL)
	})

	r.NotFound(handler.NotFound)
	return r
}
