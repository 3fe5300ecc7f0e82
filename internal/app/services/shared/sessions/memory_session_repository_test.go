package sessions

import (
	"context"
	"testing"
	"time"

	"portal-service/internal/app/models"
	"portal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository_CreatePending(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()

	t.Run("Tokens Are Unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			token, err := repo.CreatePending(ctx, "verifier")
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.False(t, seen[token], "token should never repeat")
			seen[token] = true
		}
	})

	t.Run("Pending Session Holds Verifier", func(t *testing.T) {
		token, err := repo.CreatePending(ctx, "my-code-verifier")
		require.NoError(t, err)

		session, err := repo.Get(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, models.SessionStatusPending, session.Status)
		assert.Equal(t, "my-code-verifier", session.CodeVerifier)
		assert.False(t, session.IsAuthenticated())
	})
}

func TestMemorySessionRepository_Get(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()

	t.Run("Unknown Token Is A Miss Not An Error", func(t *testing.T) {
		session, err := repo.Get(ctx, "no-such-token")
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Returned Session Is A Copy", func(t *testing.T) {
		token, err := repo.CreatePending(ctx, "verifier")
		require.NoError(t, err)

		first, err := repo.Get(ctx, token)
		require.NoError(t, err)
		first.Status = models.SessionStatusAuthenticated
		first.AccessToken = "tampered"

		second, err := repo.Get(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, models.SessionStatusPending, second.Status)
		assert.Empty(t, second.AccessToken)
	})
}

func TestMemorySessionRepository_MarkAuthenticated(t *testing.T) {
	ctx := context.Background()
	auth := models.SessionAuth{
		AccessToken: "access-token-value",
		TokenType:   "Bearer",
		PatientID:   "erXuFYUfucBZaryVksYEcMg3",
		Scope:       "patient/*.read",
		ExpiresIn:   3600,
	}

	t.Run("Pending Session Transitions Once", func(t *testing.T) {
		repo := NewMemorySessionRepository(time.Hour)
		token, err := repo.CreatePending(ctx, "verifier")
		require.NoError(t, err)

		session, err := repo.MarkAuthenticated(ctx, token, auth)
		require.NoError(t, err)
		assert.True(t, session.IsAuthenticated())
		assert.Equal(t, "erXuFYUfucBZaryVksYEcMg3", session.PatientID)
		assert.Empty(t, session.CodeVerifier, "verifier should be discarded after the exchange")
	})

	t.Run("Unknown Token Is Rejected", func(t *testing.T) {
		repo := NewMemorySessionRepository(time.Hour)
		_, err := repo.MarkAuthenticated(ctx, "no-such-token", auth)
		require.Error(t, err)

		customErr := &exceptions.CustomError{}
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Replay Is Rejected", func(t *testing.T) {
		repo := NewMemorySessionRepository(time.Hour)
		token, err := repo.CreatePending(ctx, "verifier")
		require.NoError(t, err)

		_, err = repo.MarkAuthenticated(ctx, token, auth)
		require.NoError(t, err)

		_, err = repo.MarkAuthenticated(ctx, token, auth)
		require.Error(t, err, "second authentication of the same token should fail")

		session, err := repo.Get(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "access-token-value", session.AccessToken, "first token should survive the replay attempt")
	})
}

func TestMemorySessionRepository_Delete(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()

	token, err := repo.CreatePending(ctx, "verifier")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, token))

	session, err := repo.Get(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, session)

	assert.NoError(t, repo.Delete(ctx, token), "deleting an absent session is a no-op")
}

func TestMemorySessionRepository_TTL(t *testing.T) {
	ctx := context.Background()
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newMemorySessionRepository(30*time.Minute, func() time.Time { return current })

	token, err := repo.CreatePending(ctx, "verifier")
	require.NoError(t, err)

	t.Run("Live Before TTL", func(t *testing.T) {
		current = current.Add(29 * time.Minute)
		session, err := repo.Get(ctx, token)
		require.NoError(t, err)
		assert.NotNil(t, session)
	})

	t.Run("Expired After TTL", func(t *testing.T) {
		current = current.Add(2 * time.Minute)
		session, err := repo.Get(ctx, token)
		assert.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("Expired Session Cannot Authenticate", func(t *testing.T) {
		fresh, err := repo.CreatePending(ctx, "verifier")
		require.NoError(t, err)

		current = current.Add(31 * time.Minute)
		_, err = repo.MarkAuthenticated(ctx, fresh, models.SessionAuth{AccessToken: "a", TokenType: "Bearer", PatientID: "p"})
		assert.Error(t, err)
	})

	t.Run("Zero TTL Never Expires", func(t *testing.T) {
		eternal := newMemorySessionRepository(0, func() time.Time { return current })
		token, err := eternal.CreatePending(ctx, "verifier")
		require.NoError(t, err)

		current = current.Add(1000 * time.Hour)
		session, err := eternal.Get(ctx, token)
		require.NoError(t, err)
		assert.NotNil(t, session)
	})
}
