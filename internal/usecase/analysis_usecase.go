package usecase

import (
	"context"
	"fmt"

	"resume-relevance/internal/model"
	"resume-relevance/internal/repository"
	"resume-relevance/internal/service"
	"resume-relevance/internal/util"

	"go.uber.org/zap"
)

// AnalysisUsecase glues the store and the analyzers together: it resolves
// both records, runs the external analyzer when one is configured, falls
// back to the deterministic mock scorer on any upstream failure and
// persists the outcome. Every successful call appends a fresh analysis
// record; there is no idempotence across repeated calls.
type AnalysisUsecase struct {
	resumeRepo   *repository.ResumeRepository
	jobRepo      *repository.JobRepository
	analysisRepo *repository.AnalysisRepository
	analyzer     service.RelevanceAnalyzer // external backend, may be nil
	scorer       service.RelevanceAnalyzer
	logger       *zap.Logger
}

func NewAnalysisUsecase(
	resumeRepo *repository.ResumeRepository,
	jobRepo *repository.JobRepository,
	analysisRepo *repository.AnalysisRepository,
	analyzer service.RelevanceAnalyzer,
	scorer service.RelevanceAnalyzer,
	logger *zap.Logger,
) *AnalysisUsecase {
	return &AnalysisUsecase{
		resumeRepo:   resumeRepo,
		jobRepo:      jobRepo,
		analysisRepo: analysisRepo,
		analyzer:     analyzer,
		scorer:       scorer,
		logger:       logger,
	}
}

func (uc *AnalysisUsecase) Analyze(ctx context.Context, resumeID, jobID string) (*model.Analysis, error) {
	if resumeID == "" || jobID == "" {
		fields := map[string]string{}
		if resumeID == "" {
			fields["resume_id"] = "required"
		}
		if jobID == "" {
			fields["job_id"] = "required"
		}
		return nil, util.NewFormError("resume_id and job_id are required", fields)
	}

	resume, err := uc.resumeRepo.FindByID(resumeID)
	if err != nil {
		return nil, err
	}
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	analysis, err := uc.runAnalyzer(ctx, resume, job)
	if err != nil {
		return nil, err
	}

	return uc.analysisRepo.Create(analysis)
}

// runAnalyzer degrades any external analyzer failure to the mock scoring
// path; only a scorer failure surfaces as an error.
func (uc *AnalysisUsecase) runAnalyzer(ctx context.Context, resume *model.Resume, job *model.Job) (*model.Analysis, error) {
	if uc.analyzer != nil {
		analysis, err := uc.analyzer.AnalyzeRelevance(ctx, resume, job)
		if err == nil {
			return analysis, nil
		}
		uc.logger.Warn("external analyzer failed, falling back to mock scoring",
			zap.String("resume_id", resume.ID),
			zap.String("job_id", job.ID),
			zap.Error(err),
		)
	}

	analysis, err := uc.scorer.AnalyzeRelevance(ctx, resume, job)
	if err != nil {
		return nil, fmt.Errorf("fallback scoring failed: %w", err)
	}
	return analysis, nil
}
