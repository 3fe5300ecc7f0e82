package responses

// TokenResponse is the OAuth2 token endpoint answer, including the
// SMART-on-FHIR launch context claim identifying the patient.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
	PatientID   string `json:"patient"`
}
