package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

type UserProfile struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// for back-office login
type LoginRequest struct {
	AccessKey string `json:"access_key" validate:"required"`
}

// for login response
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// JWT claims structure
type Claims struct {
	Identity string   `json:"identity"`
	Role     UserRole `json:"role"`
	jwt.RegisteredClaims
}
