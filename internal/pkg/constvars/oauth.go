package constvars

const (
	OAuthParamResponseType        = "response_type"
	OAuthParamClientID            = "client_id"
	OAuthParamRedirectURI         = "redirect_uri"
	OAuthParamScope               = "scope"
	OAuthParamState               = "state"
	OAuthParamAudience            = "aud"
	OAuthParamCode                = "code"
	OAuthParamError               = "error"
	OAuthParamGrantType           = "grant_type"
	OAuthParamCodeVerifier        = "code_verifier"
	OAuthParamCodeChallenge       = "code_challenge"
	OAuthParamCodeChallengeMethod = "code_challenge_method"

	OAuthResponseTypeCode        = "code"
	OAuthGrantTypeAuthorization  = "authorization_code"
	OAuthCodeChallengeMethodS256 = "S256"
)

// Error codes appended to the frontend redirect when the login flow fails.
const (
	AuthErrorCodeProvider        = "provider_error"
	AuthErrorCodeMissingParams   = "missing_params"
	AuthErrorCodeInvalidState    = "invalid_state"
	AuthErrorCodeTokenExchange   = "token_error"
	AuthErrorCodeIncompleteToken = "incomplete_token_response"
	AuthErrorCodeTransport       = "transport_error"
	AuthErrorCodeUnauthenticated = "unauthenticated"
	AuthErrorCodeTokenExpired    = "token_expired"
	AuthErrorCodeFetchFailed     = "fetch_failed"
	AuthErrorCodeLoginFailed     = "login_failed"
)
