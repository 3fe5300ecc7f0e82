package contracts

import (
	"context"
	"portal-service/internal/pkg/dto/requests"
	"portal-service/internal/pkg/dto/responses"
)

// RecordUsecase serves the normalized clinical records. List operations
// degrade upstream fetch failures to an empty result plus an error field;
// the single-resource patient fetch surfaces failures directly.
type RecordUsecase interface {
	GetPatient(ctx context.Context, sessionID string) (*responses.PatientRecord, error)
	ListMedications(ctx context.Context, sessionID string, query *requests.PaginationQuery) (*responses.MedicationListResponse, *responses.Pagination, error)
	ListLabs(ctx context.Context, sessionID string, query *requests.PaginationQuery) (*responses.LabListResponse, *responses.Pagination, error)
	ListVitals(ctx context.Context, sessionID string, query *requests.PaginationQuery) (*responses.VitalListResponse, *responses.Pagination, error)
}
