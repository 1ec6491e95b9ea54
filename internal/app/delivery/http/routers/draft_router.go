package routers

import (
	"careform-service/internal/app/services/core/drafts"

	"github.com/go-chi/chi/v5"
)

func attachDraftRoutes(router chi.Router, draftController *drafts.DraftController) {
	router.Route("/{draft_key}", func(r chi.Router) {
		r.Get("/", draftController.LoadDraft)
		r.Put("/", draftController.SaveDraft)
		r.Delete("/", draftController.ClearDraft)

		r.Post("/medications", draftController.AppendMedication)
		r.Delete("/medications/{item_index}", draftController.RemoveMedication)
		r.Post("/documents", draftController.AppendDocument)
		r.Delete("/documents/{item_index}", draftController.RemoveDocument)
	})
}
