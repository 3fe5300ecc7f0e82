package auth

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"portal-service/internal/app/config"
	"portal-service/internal/app/contracts"
	"portal-service/internal/app/models"
	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/dto/responses"
	"portal-service/internal/pkg/exceptions"
	"portal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authUsecase struct {
	SessionRepository contracts.SessionRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	HTTPClient        *http.Client
}

func NewAuthUsecase(sessionRepository contracts.SessionRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.FHIR.RequestTimeoutInSeconds) * time.Second,
		},
	}
}

func (u *authUsecase) BeginLogin(ctx context.Context) (string, error) {
	verifier, challenge, err := GeneratePKCEPair()
	if err != nil {
		return "", exceptions.ErrGenerateToken(err)
	}

	token, err := u.SessionRepository.CreatePending(ctx, verifier)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set(constvars.OAuthParamResponseType, constvars.OAuthResponseTypeCode)
	params.Set(constvars.OAuthParamClientID, u.InternalConfig.OAuth.ClientID)
	params.Set(constvars.OAuthParamRedirectURI, u.InternalConfig.OAuth.RedirectUri)
	params.Set(constvars.OAuthParamScope, u.InternalConfig.OAuth.Scope)
	params.Set(constvars.OAuthParamState, token)
	params.Set(constvars.OAuthParamAudience, u.InternalConfig.FHIR.BaseUrl)
	params.Set(constvars.OAuthParamCodeChallenge, challenge)
	params.Set(constvars.OAuthParamCodeChallengeMethod, constvars.OAuthCodeChallengeMethodS256)

	u.Log.Info("authUsecase.BeginLogin created pending session",
		zap.String(constvars.LoggingOperationKey, "begin_login"),
		zap.String(constvars.LoggingSessionTokenKey, utils.RedactToken(token)),
	)

	return u.InternalConfig.OAuth.AuthUrl + "?" + params.Encode(), nil
}

func (u *authUsecase) HandleCallback(ctx context.Context, code, state, providerError string) (string, error) {
	if providerError != "" {
		return "", exceptions.ErrAuthProvider(providerError)
	}
	if code == "" || state == "" {
		return "", exceptions.ErrAuthMissingParameters()
	}

	session, err := u.SessionRepository.Get(ctx, state)
	if err != nil {
		return "", err
	}
	if session == nil || session.Status != models.SessionStatusPending {
		return "", exceptions.ErrAuthInvalidState(nil)
	}

	tokenResponse, err := u.exchangeCode(ctx, code, session.CodeVerifier)
	if err != nil {
		// The session stays pending. The authorization code is single-spend
		// on the provider side, so no local retry is attempted.
		return "", err
	}

	if tokenResponse.AccessToken == "" || tokenResponse.PatientID == "" {
		return "", exceptions.ErrIncompleteTokenResponse()
	}

	tokenType := tokenResponse.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	if _, err := u.SessionRepository.MarkAuthenticated(ctx, state, models.SessionAuth{
		AccessToken: tokenResponse.AccessToken,
		TokenType:   tokenType,
		PatientID:   tokenResponse.PatientID,
		Scope:       tokenResponse.Scope,
		ExpiresIn:   tokenResponse.ExpiresIn,
	}); err != nil {
		return "", err
	}

	u.Log.Info("authUsecase.HandleCallback session authenticated",
		zap.String(constvars.LoggingOperationKey, "handle_callback"),
		zap.String(constvars.LoggingSessionTokenKey, utils.RedactToken(state)),
		zap.String(constvars.LoggingPatientIDKey, tokenResponse.PatientID),
	)

	return state, nil
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	err := u.SessionRepository.Delete(ctx, sessionID)
	if err != nil {
		return err
	}

	u.Log.Info("authUsecase.Logout session deleted",
		zap.String(constvars.LoggingOperationKey, "logout"),
		zap.String(constvars.LoggingSessionTokenKey, utils.RedactToken(sessionID)),
	)
	return nil
}

// exchangeCode POSTs the authorization code grant to the token endpoint.
func (u *authUsecase) exchangeCode(ctx context.Context, code, codeVerifier string) (*responses.TokenResponse, error) {
	form := url.Values{}
	form.Set(constvars.OAuthParamGrantType, constvars.OAuthGrantTypeAuthorization)
	form.Set(constvars.OAuthParamCode, code)
	form.Set(constvars.OAuthParamRedirectURI, u.InternalConfig.OAuth.RedirectUri)
	form.Set(constvars.OAuthParamClientID, u.InternalConfig.OAuth.ClientID)
	form.Set(constvars.OAuthParamCodeVerifier, codeVerifier)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, u.InternalConfig.OAuth.TokenUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := u.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, exceptions.ErrTokenExchange(resp.StatusCode, string(bodyBytes))
	}

	tokenResponse := new(responses.TokenResponse)
	if err := json.NewDecoder(resp.Body).Decode(tokenResponse); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "token")
	}
	return tokenResponse, nil
}
