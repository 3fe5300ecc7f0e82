package routers

import (
	"portal-service/internal/app/delivery/http/middlewares"
	"portal-service/internal/app/services/records"
	"portal-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *records.RecordController) {
	sessionParam := "/{" + constvars.URLParamSessionID + "}"

	router.Get("/patient"+sessionParam, recordController.GetPatient)
	router.Get("/medications"+sessionParam, recordController.ListMedications)
	router.Get("/labs"+sessionParam, recordController.ListLabs)
	router.Get("/vitals"+sessionParam, recordController.ListVitals)
}
