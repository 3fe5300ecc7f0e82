package contracts

import (
	"context"
	"encoding/json"
	"net/url"
	"portal-service/internal/app/models"
	"portal-service/internal/pkg/fhir_dto"
)

// FHIRClient issues bearer-authenticated reads against the FHIR server.
// Every call requires an authenticated session and requests exactly one
// page; pagination parameters are caller-supplied.
type FHIRClient interface {
	Fetch(ctx context.Context, session *models.Session, resourcePath string, query url.Values) (json.RawMessage, error)
	GetPatient(ctx context.Context, session *models.Session) (*fhir_dto.Patient, error)
	SearchMedicationRequests(ctx context.Context, session *models.Session, count, offset int) (*fhir_dto.Bundle, error)
	SearchObservations(ctx context.Context, session *models.Session, category string, count, offset int) (*fhir_dto.Bundle, error)
}
