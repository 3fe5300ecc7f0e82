package contracts

import "context"

type AuthUsecase interface {
	// BeginLogin creates a pending session and returns the provider's
	// authorization URL the browser should be redirected to.
	BeginLogin(ctx context.Context) (string, error)
	// HandleCallback consumes the OAuth2 redirect, exchanges the code for an
	// access token and returns the session token on success. providerError
	// is the raw `error` query parameter, empty when absent.
	HandleCallback(ctx context.Context, code, state, providerError string) (string, error)
	Logout(ctx context.Context, sessionID string) error
}
