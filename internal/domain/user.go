package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis aceitos nos tokens emitidos pelo serviço
const (
	RoleOwner   = 1
	RoleManager = 2
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

type Claims struct {
	UserEmail  string `json:"email"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
