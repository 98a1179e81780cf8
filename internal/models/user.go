package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Credential is one login principal. Rows are provisioned out of band
// (cmd/adduser); the service only ever reads them at login.
type Credential struct {
	Sno          int64  `json:"sno"`
	UserName     string `json:"userName"`
	PasswordHash string `json:"-" db:"password_hash"` // Never expose in JSON
}

// LoginRequest represents the login payload
type LoginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the login response; the token itself
// travels in an HTTP-only cookie, not in the body.
type LoginResponse struct {
	Message  string `json:"message"`
	Success  bool   `json:"success"`
	UserName string `json:"userName"`
}

// SessionClaims is the signed session token payload: subject id and
// userName, valid for one day.
type SessionClaims struct {
	UserID   int64  `json:"id"`
	UserName string `json:"userName"`
	jwt.RegisteredClaims
}
