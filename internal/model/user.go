package model

// Identity is the signed-in user resolved from the session cookie.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// LoginRequest represents an owner sign-in request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogoutResponse is returned after the session cookie has been cleared.
type LogoutResponse struct {
	Success bool `json:"success"`
}
