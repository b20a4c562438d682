package models

import (
	"strings"

	dErrors "custos/pkg/domain-errors"
)

// RegisterRequest carries a registration attempt. Address applies to
// customer registrations, AccessLevel to admin registrations; the other is
// ignored.
type RegisterRequest struct {
	Role        Role   `json:"role"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Address     string `json:"address,omitempty"`
	AccessLevel int    `json:"access_level,omitempty"`
}

// Normalize trims surrounding whitespace on identity fields. Passwords are
// left untouched.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.Role = Role(strings.ToLower(strings.TrimSpace(string(r.Role))))
}

// Validate checks the request is structurally complete.
func (r *RegisterRequest) Validate() error {
	if !r.Role.Valid() {
		return dErrors.New(dErrors.CodeValidation, "role must be customer or admin")
	}
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

// LoginRequest carries a login attempt.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return dErrors.New(dErrors.CodeValidation, "username is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}
