package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is an account row. PasswordHash never leaves the db/handlers boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthClaims is the JWT payload issued on login and verified by the auth
// middleware. Sub carries the user id.
type AuthClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	Username string `json:"username"`
}
