package dto

import (
	"time"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SessionDTO struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserDTO is the public user shape, without the password hash.
type UserDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
