package constvars

// Client-facing messages. Kept deliberately vague so provider details and
// tokens never leak to the browser.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientLoginFailed                   = "Login could not be completed, please try again"
	ErrClientSessionInvalid                = "Your session is invalid or has ended, please log in again"
	ErrClientSessionExpired                = "Your session has expired, please log in again"
	ErrClientUpstreamUnavailable           = "The health record service is currently unavailable"
)

// Developer-facing messages, logged but never returned to clients.
const (
	ErrDevValidationFailed            = "Input validation failed"
	ErrDevCannotMarshalJSON           = "Failed to marshal data into JSON"
	ErrDevCannotUnmarshalJSON         = "Failed to unmarshal JSON data"
	ErrDevBuildHTTPRequest            = "Failed to build outbound HTTP request"
	ErrDevSendHTTPRequest             = "Failed to send outbound HTTP request"
	ErrDevDecodeResponse              = "Failed to decode %s response body"
	ErrDevGenerateRandomToken         = "Failed to generate random token"
	ErrDevAuthProviderReturnedError   = "Authorization server returned error parameter: %s"
	ErrDevAuthMissingParameters       = "Callback is missing code or state parameter"
	ErrDevAuthInvalidState            = "State token does not match a pending session"
	ErrDevAuthSessionReplay           = "Session is already authenticated, refusing re-authentication"
	ErrDevTokenExchangeFailed         = "Token endpoint answered %d: %s"
	ErrDevIncompleteTokenResponse     = "Token response is missing access_token or patient"
	ErrDevSessionUnauthenticated      = "Session is absent or not authenticated"
	ErrDevFhirTokenExpired            = "FHIR server answered 401, access token expired"
	ErrDevFhirFetchFailed             = "FHIR server answered %d for %s: %s"
	ErrDevSessionStoreSet             = "Failed to write session to store"
	ErrDevSessionStoreGet             = "Failed to read session from store"
	ErrDevSessionStoreDelete          = "Failed to delete session from store"
)
