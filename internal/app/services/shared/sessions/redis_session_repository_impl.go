package sessions

import (
	"context"
	"time"

	"portal-service/internal/app/contracts"
	"portal-service/internal/app/models"
	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/exceptions"
	"portal-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// redisSessionRepository is the multi-instance session backend. Expiry is
// delegated to Redis key TTLs. Each state token has a single writer (one
// callback per login), so read-then-set here does not race across instances.
type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) contracts.SessionRepository {
	return &redisSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *redisSessionRepository) CreatePending(ctx context.Context, codeVerifier string) (string, error) {
	token, err := utils.GenerateOpaqueToken(stateTokenByteLen)
	if err != nil {
		return "", exceptions.ErrGenerateToken(err)
	}

	session := &models.Session{
		Token:        token,
		Status:       models.SessionStatusPending,
		CodeVerifier: codeVerifier,
		CreatedAt:    time.Now(),
	}
	if err := r.set(ctx, session, r.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (r *redisSessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	data, err := r.client.Get(ctx, constvars.RedisSessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrSessionStoreGet(err)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return session, nil
}

func (r *redisSessionRepository) MarkAuthenticated(ctx context.Context, token string, auth models.SessionAuth) (*models.Session, error) {
	session, err := r.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
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

	if err := r.set(ctx, session, redis.KeepTTL); err != nil {
		return nil, err
	}
	return session, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, constvars.RedisSessionKeyPrefix+token).Err(); err != nil {
		return exceptions.ErrSessionStoreDelete(err)
	}
	return nil
}

func (r *redisSessionRepository) set(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := r.client.Set(ctx, constvars.RedisSessionKeyPrefix+session.Token, data, ttl).Err(); err != nil {
		return exceptions.ErrSessionStoreSet(err)
	}
	return nil
}
