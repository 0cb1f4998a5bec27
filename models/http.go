package models

// RegisterRequest is the JSON payload accepted by POST /register.
type RegisterRequest struct {
	Username        string `json:"username"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the JSON payload accepted by POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the JSON payload accepted by PUT /update.
// The target record is always the authenticated user; any identifier
// supplied by the client is ignored.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserResponse wraps a sanitized user view.
type UserResponse struct {
	User User `json:"user"`
}

// UpdateUserResponse is returned by a successful profile update.
type UpdateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// MessageResponse carries a bare human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
