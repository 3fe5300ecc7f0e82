package exceptions

import (
	"fmt"
	"portal-service/internal/pkg/constvars"
)

// Login flow errors. Each carries the redirect error code the auth
// controller appends when bouncing the browser back to the frontend.
var (
	ErrAuthProvider = func(providerCode string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientLoginFailed,
			fmt.Sprintf(constvars.ErrDevAuthProviderReturnedError, providerCode)).
			WithErrorCode(constvars.AuthErrorCodeProvider)
	}
	ErrAuthMissingParameters = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientLoginFailed,
			constvars.ErrDevAuthMissingParameters).
			WithErrorCode(constvars.AuthErrorCodeMissingParams)
	}
	ErrAuthInvalidState = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSessionInvalid,
			constvars.ErrDevAuthInvalidState).
			WithErrorCode(constvars.AuthErrorCodeInvalidState)
	}
	ErrAuthSessionReplay = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientSessionInvalid,
			constvars.ErrDevAuthSessionReplay).
			WithErrorCode(constvars.AuthErrorCodeInvalidState)
	}
	ErrTokenExchange = func(statusCode int, body string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientLoginFailed,
			fmt.Sprintf(constvars.ErrDevTokenExchangeFailed, statusCode, body)).
			WithErrorCode(constvars.AuthErrorCodeTokenExchange)
	}
	ErrIncompleteTokenResponse = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientLoginFailed,
			constvars.ErrDevIncompleteTokenResponse).
			WithErrorCode(constvars.AuthErrorCodeIncompleteToken)
	}
	ErrTransport = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable,
			constvars.ErrDevSendHTTPRequest).
			WithErrorCode(constvars.AuthErrorCodeTransport)
	}
)

// Resource fetch errors.
var (
	ErrSessionUnauthenticated = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientSessionInvalid,
			constvars.ErrDevSessionUnauthenticated).
			WithErrorCode(constvars.AuthErrorCodeUnauthenticated)
	}
	ErrFHIRTokenExpired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientSessionExpired,
			constvars.ErrDevFhirTokenExpired).
			WithErrorCode(constvars.AuthErrorCodeTokenExpired)
	}
	ErrFHIRFetch = func(statusCode int, resource, body string) *CustomError {
		status := statusCode
		if status < constvars.StatusBadRequest {
			status = constvars.StatusBadGateway
		}
		return BuildNewCustomError(nil, status, constvars.ErrClientUpstreamUnavailable,
			fmt.Sprintf(constvars.ErrDevFhirFetchFailed, statusCode, resource, body)).
			WithErrorCode(constvars.AuthErrorCodeFetchFailed)
	}
)

// Ambient errors.
var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest,
			constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotUnmarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevCannotUnmarshalJSON)
	}
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevBuildHTTPRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}
	ErrGenerateToken = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevGenerateRandomToken)
	}
	ErrSessionStoreSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevSessionStoreSet)
	}
	ErrSessionStoreGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevSessionStoreGet)
	}
	ErrSessionStoreDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication,
			constvars.ErrDevSessionStoreDelete)
	}
)
