package auth

// Identity is the caller resolved from a bearer credential.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
