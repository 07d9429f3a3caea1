package service

import (
	"context"
	"fmt"
	"math"

	"resume-relevance/internal/model"
)

// MockScorer is the deterministic local scoring path. It never makes an
// external call: skills are compared by exact string equality and
// experience as a capped ratio. Given identical inputs the output is
// identical field for field.
type MockScorer struct{}

func NewMockScorer() *MockScorer {
	return &MockScorer{}
}

func (s *MockScorer) AnalyzeRelevance(_ context.Context, resume *model.Resume, job *model.Job) (*model.Analysis, error) {
	overlap := skillOverlap(resume.Skills, job.SkillsRequired)
	totalRequired := len(job.SkillsRequired)

	skillMatchPct := float64(overlap) / float64(max(totalRequired, 1)) * 100
	experienceRatio := math.Min(float64(resume.Experience)/float64(max(job.ExperienceRequired, 1)), 1.0)

	overallScore := (skillMatchPct + experienceRatio*100) / 200

	return &model.Analysis{
		ResumeID:       resume.ID,
		RelevanceScore: roundTo(overallScore, 2),
		Strengths: []string{
			fmt.Sprintf("Skill match: %d/%d", overlap, totalRequired),
			fmt.Sprintf("Work experience: %d years", resume.Experience),
		},
		Weaknesses: []string{
			"Soft skills need a separate assessment",
			"Education match needs to be verified",
		},
		Recommendations: []string{
			"Conduct a technical interview",
			"Assess the candidate's motivation",
		},
		JobMatchPercentage: roundTo(overallScore*100, 1),
		AnalysisText: fmt.Sprintf("Candidate %s has %d of %d required skills and %d years of experience.",
			resume.Name, overlap, totalRequired, resume.Experience),
	}, nil
}

// skillOverlap counts the distinct required skills the candidate has.
// Duplicates on either side collapse.
func skillOverlap(candidateSkills, requiredSkills []string) int {
	have := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[skill] = struct{}{}
	}
	matched := make(map[string]struct{}, len(requiredSkills))
	for _, skill := range requiredSkills {
		if _, ok := have[skill]; ok {
			matched[skill] = struct{}{}
		}
	}
	return len(matched)
}

func roundTo(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(x*shift) / shift
}
