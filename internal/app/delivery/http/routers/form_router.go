package routers

import (
	"forms-service/internal/app/services/core/submissions"

	"github.com/go-chi/chi/v5"
)

func attachFormRoutes(router chi.Router, submissionController *submissions.SubmissionController) {
	router.Get("/add_biobank/", submissionController.AddBiobank)
	router.Post("/add_biobank/", submissionController.AddBiobank)

	router.Get("/add_collection/", submissionController.AddCollection)
	router.Post("/add_collection/", submissionController.AddCollection)

	router.Get("/suggestion/", submissionController.Suggestion)
	router.Post("/suggestion/", submissionController.Suggestion)

	router.Get("/{formKind}/list/", submissionController.ListEntries)
}
