package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleViewer = "viewer"
	RoleAdmin  = "admin"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type UnlockRequest struct {
	AccessCode string `json:"access_code"`
}

type UnlockResponse struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
