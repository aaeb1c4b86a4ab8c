package models

// Registration is the body of POST /register. Role defaults to EDITOR.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
	CountryID string `json:"country_id,omitempty"`
}

// TokenResponse is the body returned by POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MessageResponse is the generic {"message": ...} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthStatus is the body returned by GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
