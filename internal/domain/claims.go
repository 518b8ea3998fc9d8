package domain

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserName   string `json:"name,omitempty"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
