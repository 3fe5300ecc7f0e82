package fhir

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"portal-service/internal/app/config"
	"portal-service/internal/app/contracts"
	"portal-service/internal/app/models"
	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/exceptions"
	"portal-service/internal/pkg/fhir_dto"
	"portal-service/internal/pkg/utils"

	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type fhirClient struct {
	BaseUrl    string
	Log        *zap.Logger
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

func NewFHIRClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.FHIRClient {
	return &fhirClient{
		BaseUrl: internalConfig.FHIR.BaseUrl,
		Log:     logger,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.FHIR.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(internalConfig.FHIR.MaxRequestsPerSecond), internalConfig.FHIR.MaxRequestsPerSecond),
	}
}

func (c *fhirClient) Fetch(ctx context.Context, session *models.Session, resourcePath string, query url.Values) (json.RawMessage, error) {
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrSessionUnauthenticated()
	}

	if err := c.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrTransport(err)
	}

	requestURL := c.BaseUrl + "/" + resourcePath
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	request.Header.Set(constvars.HeaderAuthorization, session.TokenType+" "+session.AccessToken)
	request.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		c.Log.Error("fhir request failed",
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.Error(err),
		)
		return nil, exceptions.ErrTransport(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resourcePath)
	}

	switch response.StatusCode {
	case constvars.StatusOK:
		return body, nil
	case constvars.StatusUnauthorized:
		c.Log.Warn("fhir access token rejected",
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.String(constvars.LoggingSessionTokenKey, utils.RedactToken(session.Token)),
		)
		return nil, exceptions.ErrFHIRTokenExpired()
	default:
		c.Log.Error("fhir server returned error",
			zap.String(constvars.LoggingResourceKey, resourcePath),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return nil, exceptions.ErrFHIRFetch(response.StatusCode, resourcePath, string(body))
	}
}

func (c *fhirClient) GetPatient(ctx context.Context, session *models.Session) (*fhir_dto.Patient, error) {
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrSessionUnauthenticated()
	}

	body, err := c.Fetch(ctx, session, constvars.ResourcePatient+"/"+session.PatientID, nil)
	if err != nil {
		return nil, err
	}

	patient := new(fhir_dto.Patient)
	if err := gojson.Unmarshal(body, patient); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}
	return patient, nil
}

func (c *fhirClient) SearchMedicationRequests(ctx context.Context, session *models.Session, count, offset int) (*fhir_dto.Bundle, error) {
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrSessionUnauthenticated()
	}

	query := url.Values{}
	query.Set(constvars.FhirQueryParamPatient, session.PatientID)
	query.Set(constvars.FhirQueryParamCount, strconv.Itoa(count))
	query.Set(constvars.FhirQueryParamOffset, strconv.Itoa(offset))

	return c.searchBundle(ctx, session, constvars.ResourceMedicationRequest, query)
}

func (c *fhirClient) SearchObservations(ctx context.Context, session *models.Session, category string, count, offset int) (*fhir_dto.Bundle, error) {
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrSessionUnauthenticated()
	}

	query := url.Values{}
	query.Set(constvars.FhirQueryParamPatient, session.PatientID)
	query.Set(constvars.FhirQueryParamCategory, category)
	query.Set(constvars.FhirQueryParamCount, strconv.Itoa(count))
	query.Set(constvars.FhirQueryParamOffset, strconv.Itoa(offset))
	query.Set(constvars.FhirQueryParamSort, constvars.FhirSortNewestFirst)

	return c.searchBundle(ctx, session, constvars.ResourceObservation, query)
}

func (c *fhirClient) searchBundle(ctx context.Context, session *models.Session, resource string, query url.Values) (*fhir_dto.Bundle, error) {
	body, err := c.Fetch(ctx, session, resource, query)
	if err != nil {
		return nil, err
	}

	bundle := new(fhir_dto.Bundle)
	if err := gojson.Unmarshal(body, bundle); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, resource)
	}
	return bundle, nil
}
