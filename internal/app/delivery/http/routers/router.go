package routers

import (
	"net/http"

	"forms-service/internal/app/delivery/http/middlewares"
	"forms-service/internal/app/services/core/submissions"
	"forms-service/internal/pkg/constvars"
	"forms-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	middlewares *middlewares.Middlewares,
	submissionController *submissions.SubmissionController,
) {
	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.SecurityHeaders)
	router.Use(middlewares.ErrorHandler)

	// Unknown paths render a bare status, never an HTML error page.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.BuildEmptyResponse(w, constvars.StatusNotFound)
	})

	router.Get("/heartbeat/", submissionController.Heartbeat)

	// Cross-origin requests are allowed on the forms surface only.
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}

	router.Route("/forms", func(r chi.Router) {
		r.Use(cors.Handler(corsOptions))
		attachFormRoutes(r, submissionController)
	})
}
