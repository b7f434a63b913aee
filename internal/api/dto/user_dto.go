package dto

import "time"

// CreateUserRequest payload for admin-created users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateUserRequest payload for partial user updates. Pointer fields
// distinguish "absent" from "present but empty".
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// SignupRequest payload for self-service signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login. Username accepts either the username or
// the email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public shape of a user; the password hash never
// leaves the service.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse wraps the user plus a freshly issued token.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}
