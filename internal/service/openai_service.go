package service

import (
	"context"
	"fmt"
	"time"

	"resume-relevance/internal/config"
	"resume-relevance/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// OpenAIService talks to an OpenAI-compatible chat-completions endpoint.
// Any failure (transport, non-2xx, unparsable content) surfaces as an error
// so the usecase can fall back to the mock scorer.
type OpenAIService struct {
	client *resty.Client
	apiKey string
	model  string
	logger *zap.Logger
}

func NewOpenAIService(cfg *config.OpenAIConfig, logger *zap.Logger) *OpenAIService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(90 * time.Second)
	return &OpenAIService{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		logger: logger,
	}
}

func (s *OpenAIService) AnalyzeRelevance(ctx context.Context, resume *model.Resume, job *model.Job) (*model.Analysis, error) {
	prompt := buildAnalysisPrompt(resume, job)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":       s.model,
			"temperature": 0.3,
			"max_tokens":  1000,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an expert in resume screening and recruiting. Respond only with JSON."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("/v1/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		s.logger.Warn("chat completion error response",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", truncate(resp.String(), 300)),
		)
		return nil, fmt.Errorf("chat completion status %d", resp.StatusCode())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return nil, fmt.Errorf("empty completion content")
	}

	analysis, err := parseAnalysisContent(resume.ID, content)
	if err != nil {
		s.logger.Warn("unparsable completion content",
			zap.Error(err),
			zap.String("content", truncate(content, 300)),
		)
		return nil, err
	}
	return analysis, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
