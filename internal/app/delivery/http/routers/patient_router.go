package routers

import (
	"careform-service/internal/app/delivery/http/middlewares"
	"careform-service/internal/app/services/core/drafts"
	"careform-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	draftController *drafts.DraftController,
) {
	router.Get("/", patientController.ListPatients)
	router.With(middlewares.SubmitLimiter.Limit).Post("/", patientController.CreatePatient)

	router.Post("/validate-field", patientController.ValidateField)
	router.Post("/validate-section", patientController.ValidateSection)

	// Create-mode form bootstrap under the sentinel draft key.
	router.Get("/form", draftController.OpenForm)

	router.Route("/{patient_id}", func(r chi.Router) {
		r.Get("/", patientController.GetPatient)
		r.With(middlewares.SubmitLimiter.Limit).Put("/", patientController.UpdatePatient)
		r.Get("/form", draftController.OpenForm)
	})
}
