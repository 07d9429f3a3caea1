package model

import (
	"time"
)

// Analysis is the outcome of matching one resume against one job posting.
// Written once by the analysis usecase, never mutated afterwards.
type Analysis struct {
	ID                 string    `json:"id" mapstructure:"id"`
	ResumeID           string    `json:"resume_id" mapstructure:"resume_id"`
	RelevanceScore     float64   `json:"relevance_score" mapstructure:"relevance_score"` // [0.0, 1.0]
	Strengths          []string  `json:"strengths" mapstructure:"strengths"`
	Weaknesses         []string  `json:"weaknesses" mapstructure:"weaknesses"`
	Recommendations    []string  `json:"recommendations" mapstructure:"recommendations"`
	JobMatchPercentage float64   `json:"job_match_percentage" mapstructure:"job_match_percentage"` // [0, 100]
	AnalysisText       string    `json:"analysis_text" mapstructure:"analysis_text"`
	CreatedAt          time.Time `json:"created_at" mapstructure:"created_at"`
}
