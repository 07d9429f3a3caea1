package model

import (
	"time"
)

type User struct {
	ID           string    `json:"id" mapstructure:"id"`
	Username     string    `json:"username" mapstructure:"username"`
	PasswordHash string    `json:"password_hash" mapstructure:"password_hash"`
	Role         string    `json:"role" mapstructure:"role"` // "user" or "admin"
	CreatedAt    time.Time `json:"created_at" mapstructure:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" mapstructure:"updated_at"`
}
