package models

import "time"

type SessionStatus string

const (
	SessionStatusPending       SessionStatus = "pending"
	SessionStatusAuthenticated SessionStatus = "authenticated"
)

// Session correlates the OAuth2 redirect round-trip and the API calls that
// follow it. The token doubles as the OAuth2 state parameter.
type Session struct {
	Token        string        `json:"token"`
	Status       SessionStatus `json:"status"`
	CodeVerifier string        `json:"code_verifier,omitempty"`
	AccessToken  string        `json:"access_token,omitempty"`
	TokenType    string        `json:"token_type,omitempty"`
	PatientID    string        `json:"patient_id,omitempty"`
	Scope        string        `json:"scope,omitempty"`
	ExpiresIn    int           `json:"expires_in,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.Status == SessionStatusAuthenticated && s.AccessToken != ""
}

// SessionAuth carries the token endpoint fields applied when a pending
// session transitions to authenticated.
type SessionAuth struct {
	AccessToken string
	TokenType   string
	PatientID   string
	Scope       string
	ExpiresIn   int
}
