package service

import (
	"context"
	"testing"

	"resume-relevance/internal/model"

	"github.com/stretchr/testify/require"
)

func TestMockScorerWorkedExample(t *testing.T) {
	scorer := NewMockScorer()
	resume := &model.Resume{
		ID:         "r1",
		Name:       "Alexey Ivanov",
		Experience: 4,
		Skills:     []string{"Python", "Django", "PostgreSQL", "Docker", "Git"},
	}
	job := &model.Job{
		ID:                 "j1",
		ExperienceRequired: 3,
		SkillsRequired:     []string{"Python", "Django", "PostgreSQL", "Docker", "Redis"},
	}

	analysis, err := scorer.AnalyzeRelevance(context.Background(), resume, job)
	require.NoError(t, err)
	require.Equal(t, 0.9, analysis.RelevanceScore)
	require.Equal(t, 90.0, analysis.JobMatchPercentage)
	require.Equal(t, "r1", analysis.ResumeID)
	require.Equal(t, []string{"Skill match: 4/5", "Work experience: 4 years"}, analysis.Strengths)
	require.Len(t, analysis.Weaknesses, 2)
	require.Len(t, analysis.Recommendations, 2)
	require.Equal(t, "Candidate Alexey Ivanov has 4 of 5 required skills and 4 years of experience.", analysis.AnalysisText)
}

func TestMockScorerEmptyRequiredSkills(t *testing.T) {
	scorer := NewMockScorer()
	resume := &model.Resume{ID: "r1", Experience: 1, Skills: []string{"X"}}
	job := &model.Job{ID: "j1", ExperienceRequired: 2, SkillsRequired: []string{}}

	analysis, err := scorer.AnalyzeRelevance(context.Background(), resume, job)
	require.NoError(t, err)
	require.Equal(t, 0.25, analysis.RelevanceScore)
	require.Equal(t, 25.0, analysis.JobMatchPercentage)
}

func TestMockScorerDeterministic(t *testing.T) {
	scorer := NewMockScorer()
	resume := &model.Resume{ID: "r1", Name: "A", Experience: 7, Skills: []string{"Go", "SQL", "Kafka"}}
	job := &model.Job{ID: "j1", ExperienceRequired: 5, SkillsRequired: []string{"Go", "SQL", "Redis", "Linux"}}

	first, err := scorer.AnalyzeRelevance(context.Background(), resume, job)
	require.NoError(t, err)
	second, err := scorer.AnalyzeRelevance(context.Background(), resume, job)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMockScorerZeroRequiredExperience(t *testing.T) {
	scorer := NewMockScorer()
	job := &model.Job{ID: "j1", ExperienceRequired: 0, SkillsRequired: []string{"Go"}}

	// the max(...,1) guard makes zero required years behave like one
	withExp, err := scorer.AnalyzeRelevance(context.Background(), &model.Resume{ID: "r1", Experience: 5, Skills: []string{"Go"}}, job)
	require.NoError(t, err)
	require.Equal(t, 1.0, withExp.RelevanceScore)

	withoutExp, err := scorer.AnalyzeRelevance(context.Background(), &model.Resume{ID: "r2", Experience: 0, Skills: []string{"Go"}}, job)
	require.NoError(t, err)
	require.Equal(t, 0.5, withoutExp.RelevanceScore)
}

func TestMockScorerDuplicateSkillsCollapse(t *testing.T) {
	scorer := NewMockScorer()
	resume := &model.Resume{ID: "r1", Experience: 2, Skills: []string{"Go", "Go"}}
	job := &model.Job{ID: "j1", ExperienceRequired: 2, SkillsRequired: []string{"Go", "Rust"}}

	analysis, err := scorer.AnalyzeRelevance(context.Background(), resume, job)
	require.NoError(t, err)
	// 1 of 2 skills plus full experience ratio
	require.Equal(t, 0.75, analysis.RelevanceScore)
	require.Equal(t, "Skill match: 1/2", analysis.Strengths[0])
}

func TestMockScorerBounds(t *testing.T) {
	scorer := NewMockScorer()
	cases := []struct {
		resume model.Resume
		job    model.Job
	}{
		{model.Resume{Experience: 0, Skills: nil}, model.Job{ExperienceRequired: 10, SkillsRequired: []string{"A", "B"}}},
		{model.Resume{Experience: 50, Skills: []string{"A", "B"}}, model.Job{ExperienceRequired: 1, SkillsRequired: []string{"A", "B"}}},
		{model.Resume{Experience: 3, Skills: []string{"A"}}, model.Job{ExperienceRequired: 7, SkillsRequired: []string{"A", "B", "C"}}},
		{model.Resume{Experience: 1, Skills: []string{"Z"}}, model.Job{ExperienceRequired: 0, SkillsRequired: nil}},
	}

	for _, tc := range cases {
		analysis, err := scorer.AnalyzeRelevance(context.Background(), &tc.resume, &tc.job)
		require.NoError(t, err)
		require.GreaterOrEqual(t, analysis.RelevanceScore, 0.0)
		require.LessOrEqual(t, analysis.RelevanceScore, 1.0)
		require.GreaterOrEqual(t, analysis.JobMatchPercentage, 0.0)
		require.LessOrEqual(t, analysis.JobMatchPercentage, 100.0)
	}
}
