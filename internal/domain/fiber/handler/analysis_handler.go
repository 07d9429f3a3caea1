package handler

import (
	"time"

	"resume-relevance/internal/dto"
	"resume-relevance/internal/middleware"
	"resume-relevance/internal/model"
	"resume-relevance/internal/repository"
	"resume-relevance/internal/response"
	"resume-relevance/internal/usecase"
	"resume-relevance/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	uc     *usecase.AnalysisUsecase
	repo   *repository.AnalysisRepository
	logger *zap.Logger
}

func NewAnalysisHandler(uc *usecase.AnalysisUsecase, repo *repository.AnalysisRepository, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, repo: repo, logger: logger}
}

func (h *AnalysisHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/analyze", middleware.RateLimiter(10, 1*time.Minute), h.Analyze)
	api.Get("/analyses", h.List)
	api.Get("/analyses/:id", h.Get)
}

func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body",
		}, err)
	}

	analysis, err := h.uc.Analyze(c.Context(), req.ResumeID, req.JobID)
	if err != nil {
		return respondError(c, err, "resume or job not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "analysis completed",
		Data:    analysis,
	})
}

func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	var (
		analyses []model.Analysis
		err      error
	)
	if resumeID := c.Query("resume_id"); resumeID != "" {
		analyses, err = h.repo.FindByResumeID(resumeID)
	} else {
		analyses, err = h.repo.GetAll()
	}
	if err != nil {
		h.logger.Error("analysis collection read failed", zap.Error(err))
		analyses = []model.Analysis{}
	}

	items, pagination := response.Paginate(analyses, c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "analyses listed",
		Data:       items,
		Pagination: pagination,
	})
}

func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	analysis, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "analysis not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "analysis fetched",
		Data:    analysis,
	})
}
