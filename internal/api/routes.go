package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/lehmann314159/vokab/docs"
)

// DocsPath is where the API documentation is served
const DocsPath = "/api-docs"

// NewRouter creates and configures the Chi router
func NewRouter(h *Handler, logger *zap.Logger, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))
	r.Use(CORS(allowedOrigins))

	// Health check endpoint
	r.Get("/health", h.HealthCheck)

	// API documentation
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/index.html", http.StatusMovedPermanently)
	})
	r.Get(DocsPath+"/*", httpSwagger.Handler(httpSwagger.URL(DocsPath+"/doc.json")))

	r.Route("/words", func(r chi.Router) {
		r.Use(JSONContentType)

		r.Get("/", h.ListWords)
		r.Get("/all", h.ListNames)
		r.Get("/count", h.CountWords)
		r.Get("/list", h.ListPage)
		r.Post("/words", h.CreateWords)

		r.Route("/word", func(r chi.Router) {
			r.Get("/", h.GetWordsByName)
			r.Post("/", h.CreateWord)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetWord)
				r.Put("/update", h.UpdateWord)
				r.Delete("/delete", h.DeleteWord)
			})
		})
	})

	return r
}
