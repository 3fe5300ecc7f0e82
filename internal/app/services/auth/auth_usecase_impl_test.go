package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"portal-service/internal/app/config"
	"portal-service/internal/app/contracts"
	"portal-service/internal/app/models"
	"portal-service/internal/app/services/shared/sessions"
	"portal-service/internal/pkg/constvars"
	"portal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestConfig(tokenURL string) *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			FrontendBaseUrl: "http://localhost:3000",
		},
		OAuth: config.OAuth{
			AuthUrl:     "https://auth.example.com/oauth2/authorize",
			TokenUrl:    tokenURL,
			ClientID:    "test-client-id",
			RedirectUri: "http://localhost:8000/api/v1/auth/callback",
			Scope:       "openid fhirUser patient/*.read launch/patient",
		},
		FHIR: config.FHIR{
			BaseUrl:                 "https://fhir.example.com/api/FHIR/R4",
			RequestTimeoutInSeconds: 5,
			MaxRequestsPerSecond:    10,
		},
		Sessions: config.Sessions{
			Backend:      constvars.SessionBackendMemory,
			TTLInMinutes: 60,
		},
	}
}

func TestAuthUsecase_BeginLogin(t *testing.T) {
	repo := sessions.NewMemorySessionRepository(time.Hour)
	uc := NewAuthUsecase(repo, newTestConfig("https://auth.example.com/oauth2/token"), zap.NewNop())
	ctx := context.Background()

	redirectURL, err := uc.BeginLogin(ctx)
	require.NoError(t, err)

	parsed, err := url.Parse(redirectURL)
	require.NoError(t, err)
	assert.Equal(t, "auth.example.com", parsed.Host)
	assert.Equal(t, "/oauth2/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "test-client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/api/v1/auth/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid fhirUser patient/*.read launch/patient", query.Get("scope"))
	assert.Equal(t, "https://fhir.example.com/api/FHIR/R4", query.Get("aud"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
	assert.NotEmpty(t, query.Get("code_challenge"))

	t.Run("State Matches A Pending Session", func(t *testing.T) {
		state := query.Get("state")
		require.NotEmpty(t, state)

		session, err := repo.Get(ctx, state)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, models.SessionStatusPending, session.Status)
		assert.NotEmpty(t, session.CodeVerifier)
	})

	t.Run("Challenge Derives From Stored Verifier", func(t *testing.T) {
		session, err := repo.Get(ctx, query.Get("state"))
		require.NoError(t, err)
		require.NotNil(t, session)

		digest := sha256.Sum256([]byte(session.CodeVerifier))
		assert.Equal(t, base64.RawURLEncoding.EncodeToString(digest[:]), query.Get("code_challenge"))
	})

	t.Run("Consecutive Logins Use Fresh State", func(t *testing.T) {
		second, err := uc.BeginLogin(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, redirectURL, second)
	})
}

func TestAuthUsecase_HandleCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("Provider Error Short-Circuits", func(t *testing.T) {
		repo := sessions.NewMemorySessionRepository(time.Hour)
		uc := NewAuthUsecase(repo, newTestConfig("https://unused.example.com"), zap.NewNop())

		_, err := uc.HandleCallback(ctx, "some-code", "some-state", "access_denied")
		require.Error(t, err)
		assertErrorCode(t, err, constvars.AuthErrorCodeProvider)
	})

	t.Run("Missing Code Or State", func(t *testing.T) {
		repo := sessions.NewMemorySessionRepository(time.Hour)
		uc := NewAuthUsecase(repo, newTestConfig("https://unused.example.com"), zap.NewNop())

		_, err := uc.HandleCallback(ctx, "", "some-state", "")
		assertErrorCode(t, err, constvars.AuthErrorCodeMissingParams)

		_, err = uc.HandleCallback(ctx, "some-code", "", "")
		assertErrorCode(t, err, constvars.AuthErrorCodeMissingParams)
	})

	t.Run("Unknown State Is Rejected", func(t *testing.T) {
		repo := sessions.NewMemorySessionRepository(time.Hour)
		uc := NewAuthUsecase(repo, newTestConfig("https://unused.example.com"), zap.NewNop())

		_, err := uc.HandleCallback(ctx, "some-code", "never-issued", "")
		assertErrorCode(t, err, constvars.AuthErrorCodeInvalidState)
	})

	t.Run("Token Endpoint Failure Keeps Session Pending", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
		}))
		defer server.Close()

		repo := sessions.NewMemorySessionRepository(time.Hour)
		uc := NewAuthUsecase(repo, newTestConfig(server.URL), zap.NewNop())

		state := beginLoginState(t, uc, repo)
		_, err := uc.HandleCallback(ctx, "bad-code", state, "")
		assertErrorCode(t, err, constvars.AuthErrorCodeTokenExchange)

		session, err := repo.Get(ctx, state)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, models.SessionStatusPending, session.Status)
	})

	t.Run("Incomplete Token Response Is Rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"abc","token_type":"Bearer"}`))
		}))
		defer server.Close()

		repo := sessions.NewMemorySessionRepository(time.Hour)
		uc := NewAuthUsecase(repo, newTestConfig(server.URL), zap.NewNop())

		state := beginLoginState(t, uc, repo)
		_, err := uc.HandleCallback(ctx, "some-code", state, "")
		assertErrorCode(t, err, constvars.AuthErrorCodeIncompleteToken)
	})

	t.Run("Successful Exchange Authenticates The Session", func(t *testing.T) {
		var gotForm url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"epic-access-token","token_type":"Bearer","expires_in":3600,"scope":"patient/*.read","patient":"erXuFYUfucBZaryVksYEcMg3"}`))
		}))
		defer server.Close()

		repo := sessions.NewMemorySessionRepository(time.Hour)
		uc := NewAuthUsecase(repo, newTestConfig(server.URL), zap.NewNop())

		state := beginLoginState(t, uc, repo)
		pending, err := repo.Get(ctx, state)
		require.NoError(t, err)
		verifier := pending.CodeVerifier

		sessionID, err := uc.HandleCallback(ctx, "auth-code-123", state, "")
		require.NoError(t, err)
		assert.Equal(t, state, sessionID)

		assert.Equal(t, "authorization_code", gotForm.Get("grant_type"))
		assert.Equal(t, "auth-code-123", gotForm.Get("code"))
		assert.Equal(t, "test-client-id", gotForm.Get("client_id"))
		assert.Equal(t, verifier, gotForm.Get("code_verifier"))

		session, err := repo.Get(ctx, state)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.True(t, session.IsAuthenticated())
		assert.Equal(t, "epic-access-token", session.AccessToken)
		assert.Equal(t, "erXuFYUfucBZaryVksYEcMg3", session.PatientID)
		assert.Equal(t, 3600, session.ExpiresIn)
		assert.Empty(t, session.CodeVerifier)

		t.Run("State Cannot Be Replayed", func(t *testing.T) {
			_, err := uc.HandleCallback(ctx, "auth-code-123", state, "")
			require.Error(t, err)
		})
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	repo := sessions.NewMemorySessionRepository(time.Hour)
	uc := NewAuthUsecase(repo, newTestConfig("https://unused.example.com"), zap.NewNop())
	ctx := context.Background()

	token, err := repo.CreatePending(ctx, "verifier")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, token))

	session, err := repo.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, session)

	assert.NoError(t, uc.Logout(ctx, "never-issued"), "logging out an unknown session is a no-op")
}

func beginLoginState(t *testing.T, uc contracts.AuthUsecase, repo contracts.SessionRepository) string {
	t.Helper()
	redirectURL, err := uc.BeginLogin(context.Background())
	require.NoError(t, err)
	parsed, err := url.Parse(redirectURL)
	require.NoError(t, err)
	state := parsed.Query().Get("state")
	require.NotEmpty(t, state)
	return state
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, code, customErr.ErrorCode)
}
