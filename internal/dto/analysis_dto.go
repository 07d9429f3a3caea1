package dto

type AnalyzeRequest struct {
	ResumeID string `json:"resume_id"`
	JobID    string `json:"job_id"`
}
