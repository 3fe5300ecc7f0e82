package records

import (
	"net/http"
	"strconv"

	"portal-service/internal/app/contracts"
	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/dto/requests"
	"portal-service/internal/pkg/exceptions"
	"portal-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecordController struct {
	Log           *zap.Logger
	RecordUsecase contracts.RecordUsecase
}

func NewRecordController(logger *zap.Logger, recordUsecase contracts.RecordUsecase) *RecordController {
	return &RecordController{
		Log:           logger,
		RecordUsecase: recordUsecase,
	}
}

func (ctrl *RecordController) GetPatient(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)

	record, err := ctrl.RecordUsecase.GetPatient(r.Context(), sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, record)
}

func (ctrl *RecordController) ListMedications(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	query, err := parsePaginationQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, pagination, err := ctrl.RecordUsecase.ListMedications(r.Context(), sessionID, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetMedicationsSuccessMessage, pagination, result)
}

func (ctrl *RecordController) ListLabs(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	query, err := parsePaginationQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, pagination, err := ctrl.RecordUsecase.ListLabs(r.Context(), sessionID, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetLabResultsSuccessMessage, pagination, result)
}

func (ctrl *RecordController) ListVitals(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	query, err := parsePaginationQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, pagination, err := ctrl.RecordUsecase.ListVitals(r.Context(), sessionID, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetVitalSignsSuccessMessage, pagination, result)
}

func parsePaginationQuery(r *http.Request) (*requests.PaginationQuery, error) {
	query := &requests.PaginationQuery{
		Page:     constvars.DefaultPage,
		PageSize: constvars.DefaultPageSize,
	}

	if raw := r.URL.Query().Get(constvars.URLQueryParamPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		query.Page = page
	}
	if raw := r.URL.Query().Get(constvars.URLQueryParamPageSize); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		query.PageSize = pageSize
	}

	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return query, nil
}
