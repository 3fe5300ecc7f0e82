package records

import (
	"context"
	"errors"

	"portal-service/internal/app/config"
	"portal-service/internal/app/contracts"
	"portal-service/internal/app/models"
	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/dto/requests"
	"portal-service/internal/pkg/dto/responses"
	"portal-service/internal/pkg/exceptions"
	"portal-service/internal/pkg/mapper"
	"portal-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type recordUsecase struct {
	SessionRepository contracts.SessionRepository
	FHIRClient        contracts.FHIRClient
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewRecordUsecase(
	sessionRepository contracts.SessionRepository,
	fhirClient contracts.FHIRClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RecordUsecase {
	return &recordUsecase{
		SessionRepository: sessionRepository,
		FHIRClient:        fhirClient,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *recordUsecase) GetPatient(ctx context.Context, sessionID string) (*responses.PatientRecord, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.FHIRClient.GetPatient(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patient demographics retrieved",
		zap.String(constvars.LoggingSessionTokenKey, utils.RedactToken(sessionID)),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)
	return mapper.ToPatientRecord(patient), nil
}

func (uc *recordUsecase) ListMedications(ctx context.Context, sessionID string, query *requests.PaginationQuery) (*responses.MedicationListResponse, *responses.Pagination, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	bundle, err := uc.FHIRClient.SearchMedicationRequests(ctx, session, query.PageSize, query.Offset())
	if err != nil {
		message, degradeErr := uc.degrade(err, constvars.ResourceMedicationRequest, sessionID)
		if degradeErr != nil {
			return nil, nil, degradeErr
		}
		return &responses.MedicationListResponse{Medications: []responses.MedicationRecord{}, Error: message},
			mapper.NewPagination(0, query.Page, query.PageSize), nil
	}

	return &responses.MedicationListResponse{Medications: mapper.ToMedicationRecords(bundle)},
		mapper.NewPagination(bundle.Total, query.Page, query.PageSize), nil
}

func (uc *recordUsecase) ListLabs(ctx context.Context, sessionID string, query *requests.PaginationQuery) (*responses.LabListResponse, *responses.Pagination, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	bundle, err := uc.FHIRClient.SearchObservations(ctx, session, constvars.ObservationCategoryLaboratory, query.PageSize, query.Offset())
	if err != nil {
		message, degradeErr := uc.degrade(err, constvars.ResourceObservation, sessionID)
		if degradeErr != nil {
			return nil, nil, degradeErr
		}
		return &responses.LabListResponse{Labs: []responses.LabRecord{}, Error: message},
			mapper.NewPagination(0, query.Page, query.PageSize), nil
	}

	return &responses.LabListResponse{Labs: mapper.ToLabRecords(bundle)},
		mapper.NewPagination(bundle.Total, query.Page, query.PageSize), nil
}

func (uc *recordUsecase) ListVitals(ctx context.Context, sessionID string, query *requests.PaginationQuery) (*responses.VitalListResponse, *responses.Pagination, error) {
	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	bundle, err := uc.FHIRClient.SearchObservations(ctx, session, constvars.ObservationCategoryVitalSigns, query.PageSize, query.Offset())
	if err != nil {
		message, degradeErr := uc.degrade(err, constvars.ResourceObservation, sessionID)
		if degradeErr != nil {
			return nil, nil, degradeErr
		}
		return &responses.VitalListResponse{Vitals: []responses.VitalRecord{}, Error: message},
			mapper.NewPagination(0, query.Page, query.PageSize), nil
	}

	return &responses.VitalListResponse{Vitals: mapper.ToVitalRecords(bundle)},
		mapper.NewPagination(bundle.Total, query.Page, query.PageSize), nil
}

func (uc *recordUsecase) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := uc.SessionRepository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrSessionUnauthenticated()
	}
	return session, nil
}

// degrade decides how a list endpoint handles an upstream failure. Expired
// or rejected credentials propagate so the frontend can restart login;
// anything else collapses to an error message alongside an empty page.
func (uc *recordUsecase) degrade(err error, resource, sessionID string) (string, error) {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
		return "", err
	}

	uc.Log.Warn("degrading failed resource fetch to empty result",
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingSessionTokenKey, utils.RedactToken(sessionID)),
		zap.Error(err),
	)

	if customErr != nil {
		return customErr.ClientMessage, nil
	}
	return constvars.ErrClientUpstreamUnavailable, nil
}
