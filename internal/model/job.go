package model

import (
	"time"
)

type Job struct {
	ID                 string    `json:"id" mapstructure:"id"`
	Title              string    `json:"title" mapstructure:"title"`
	Requirements       []string  `json:"requirements" mapstructure:"requirements"`
	Responsibilities   []string  `json:"responsibilities" mapstructure:"responsibilities"`
	SkillsRequired     []string  `json:"skills_required" mapstructure:"skills_required"`
	ExperienceRequired int       `json:"experience_required" mapstructure:"experience_required"` // years, non-negative
	CreatedAt          time.Time `json:"created_at" mapstructure:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" mapstructure:"updated_at"`
}
