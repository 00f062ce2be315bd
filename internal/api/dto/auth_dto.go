package dto

import "time"

// UserRegisterRequest payload for new customers.
type UserRegisterRequest struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Password    string  `json:"password"`
}

// UserLoginRequest payload for login.
type UserLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest payload for admin login.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateEmailRequest payload; the current password re-gates the change.
type UpdateEmailRequest struct {
	NewEmail string `json:"new_email"`
	Password string `json:"password"`
}

// UpdatePasswordRequest payload.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdatePhoneRequest payload.
type UpdatePhoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}

// ForgotPasswordRequest payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest payload.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
