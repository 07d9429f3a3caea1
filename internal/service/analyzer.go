package service

import (
	"context"
	"fmt"
	"strings"

	"resume-relevance/internal/model"

	"github.com/tidwall/gjson"
)

// RelevanceAnalyzer produces a relevance judgement for one resume against
// one job posting. Implementations: OpenAIService, GeminiService and the
// deterministic MockScorer fallback.
type RelevanceAnalyzer interface {
	AnalyzeRelevance(ctx context.Context, resume *model.Resume, job *model.Job) (*model.Analysis, error)
}

func buildAnalysisPrompt(resume *model.Resume, job *model.Job) string {
	return fmt.Sprintf(`
Analyze how relevant the candidate's resume is for the given job posting.

RESUME:
Name: %s
Position: %s
Experience: %d years
Skills: %s
Education: %s
Languages: %s

JOB POSTING:
Title: %s
Requirements: %s
Responsibilities: %s
Required skills: %s
Required experience: %d years

Return your answer STRICTLY in JSON format with this schema:
{
	"relevance_score": <float, range 0-1>,
	"strengths": ["<strength 1>", "<strength 2>"],
	"weaknesses": ["<weakness 1>", "<weakness 2>"],
	"recommendations": ["<recommendation 1>", "<recommendation 2>"],
	"job_match_percentage": <float, range 0-100>,
	"analysis_text": "<detailed relevance analysis>"
}
`,
		resume.Name,
		resume.Position,
		resume.Experience,
		strings.Join(resume.Skills, ", "),
		resume.Education,
		strings.Join(resume.Languages, ", "),
		job.Title,
		strings.Join(job.Requirements, ", "),
		strings.Join(job.Responsibilities, ", "),
		strings.Join(job.SkillsRequired, ", "),
		job.ExperienceRequired,
	)
}

// analysisResponseKeys are all required: a response carrying only some of
// them is treated as unparsable so the caller degrades to mock scoring
// rather than persisting a partial analysis.
var analysisResponseKeys = []string{
	"relevance_score",
	"strengths",
	"weaknesses",
	"recommendations",
	"job_match_percentage",
	"analysis_text",
}

// parseAnalysisContent pulls the analysis fields out of raw model output.
// The JSON object is located by substring scan since models tend to wrap
// it in prose or code fences.
func parseAnalysisContent(resumeID, content string) (*model.Analysis, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in analyzer response")
	}
	body := content[start : end+1]
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("malformed JSON in analyzer response")
	}

	parsed := gjson.Parse(body)
	for _, key := range analysisResponseKeys {
		if !parsed.Get(key).Exists() {
			return nil, fmt.Errorf("analyzer response missing %s", key)
		}
	}
	score := parsed.Get("relevance_score").Float()
	if score < 0 || score > 1 {
		return nil, fmt.Errorf("relevance_score %v out of range", score)
	}
	pct := parsed.Get("job_match_percentage").Float()
	if pct < 0 || pct > 100 {
		return nil, fmt.Errorf("job_match_percentage %v out of range", pct)
	}

	return &model.Analysis{
		ResumeID:           resumeID,
		RelevanceScore:     score,
		Strengths:          stringList(parsed.Get("strengths")),
		Weaknesses:         stringList(parsed.Get("weaknesses")),
		Recommendations:    stringList(parsed.Get("recommendations")),
		JobMatchPercentage: pct,
		AnalysisText:       parsed.Get("analysis_text").String(),
	}, nil
}

func stringList(res gjson.Result) []string {
	items := res.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out
}
