package model

import (
	"time"
)

type Resume struct {
	ID          string            `json:"id" mapstructure:"id"`
	Name        string            `json:"name" mapstructure:"name"`
	Position    string            `json:"position" mapstructure:"position"`
	Experience  int               `json:"experience" mapstructure:"experience"` // years, non-negative
	Skills      []string          `json:"skills" mapstructure:"skills"`
	Education   string            `json:"education" mapstructure:"education"`
	Languages   []string          `json:"languages" mapstructure:"languages"`
	ContactInfo map[string]string `json:"contact_info" mapstructure:"contact_info"`
	CreatedAt   time.Time         `json:"created_at" mapstructure:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" mapstructure:"updated_at"`
}
