package sessions

import (
	"context"
	"sync"
	"time"

	"portal-service/internal/app/contracts"
	"portal-service/internal/app/models"
	"portal-service/internal/pkg/exceptions"
	"portal-service/internal/pkg/utils"
)

const stateTokenByteLen = 32

// memorySessionRepository is the single-instance session backend: a mutex
// guarded map with a TTL. Expired entries are dropped lazily on lookup;
// there is no sweeper goroutine.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionRepository(ttl time.Duration) contracts.SessionRepository {
	return newMemorySessionRepository(ttl, time.Now)
}

func newMemorySessionRepository(ttl time.Duration, now func() time.Time) *memorySessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      now,
	}
}

func (r *memorySessionRepository) CreatePending(ctx context.Context, codeVerifier string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token, err := r.freshToken()
	if err != nil {
		return "", err
	}

	r.sessions[token] = &models.Session{
		Token:        token,
		Status:       models.SessionStatusPending,
		CodeVerifier: codeVerifier,
		CreatedAt:    r.now(),
	}
	return token, nil
}

func (r *memorySessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[token]
	if ok && !r.expired(session) {
		clone := *session
		r.mu.RUnlock()
		return &clone, nil
	}
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[token]; ok && r.expired(session) {
		delete(r.sessions, token)
	}
	return nil, nil
}

func (r *memorySessionRepository) MarkAuthenticated(ctx context.Context, token string, auth models.SessionAuth) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok || r.expired(session) {
		return nil, exceptions.ErrAuthInvalidState(nil)
	}
	if session.Status == models.SessionStatusAuthenticated {
		return nil, exceptions.ErrAuthSessionReplay()
	}

	session.Status = models.SessionStatusAuthenticated
	session.CodeVerifier = ""
	session.AccessToken = auth.AccessToken
	session.TokenType = auth.TokenType
	session.PatientID = auth.PatientID
	session.Scope = auth.Scope
	session.ExpiresIn = auth.ExpiresIn

	clone := *session
	return &clone, nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

// freshToken generates an unguessable token, rerolling on the negligible
// chance it collides with a live one. Caller holds the write lock.
func (r *memorySessionRepository) freshToken() (string, error) {
	for {
		token, err := utils.GenerateOpaqueToken(stateTokenByteLen)
		if err != nil {
			return "", exceptions.ErrGenerateToken(err)
		}
		if _, exists := r.sessions[token]; !exists {
			return token, nil
		}
	}
}

func (r *memorySessionRepository) expired(session *models.Session) bool {
	if r.ttl <= 0 {
		return false
	}
	return r.now().After(session.CreatedAt.Add(r.ttl))
}
