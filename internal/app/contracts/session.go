package contracts

import (
	"context"
	"portal-service/internal/app/models"
)

// SessionRepository owns the session lifecycle. Implementations must make
// MarkAuthenticated an atomic read-check-write: a token that is absent or
// already authenticated is rejected, never overwritten.
type SessionRepository interface {
	// CreatePending stores a new pending session holding the PKCE code
	// verifier and returns its fresh, unguessable token.
	CreatePending(ctx context.Context, codeVerifier string) (string, error)
	// Get returns the session for token, or (nil, nil) on a miss. A miss is
	// not an error; callers decide whether it is fatal.
	Get(ctx context.Context, token string) (*models.Session, error)
	// MarkAuthenticated transitions a pending session to authenticated and
	// discards its code verifier.
	MarkAuthenticated(ctx context.Context, token string, auth models.SessionAuth) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}
