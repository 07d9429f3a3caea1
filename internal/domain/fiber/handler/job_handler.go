package handler

import (
	"resume-relevance/internal/model"
	"resume-relevance/internal/repository"
	"resume-relevance/internal/response"
	"resume-relevance/internal/storage"
	"resume-relevance/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type JobHandler struct {
	repo   *repository.JobRepository
	logger *zap.Logger
}

func NewJobHandler(repo *repository.JobRepository, logger *zap.Logger) *JobHandler {
	return &JobHandler{repo: repo, logger: logger}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/jobs", h.Create)
	api.Get("/jobs", h.List)
	api.Get("/jobs/:id", h.Get)
	api.Put("/jobs/:id", h.Update)
	api.Delete("/jobs/:id", h.Delete)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var payload storage.Record
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body",
		}, err)
	}
	if err := model.ValidateJobPayload(payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:       fiber.StatusBadRequest,
			Message:    "invalid job payload",
			DevMessage: err.Error(),
		}, err)
	}

	job, err := h.repo.Create(payload)
	if err != nil {
		return respondError(c, err, "job not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "job created",
		Data:    job,
	})
}

func (h *JobHandler) List(c *fiber.Ctx) error {
	jobs, err := h.repo.GetAll()
	if err != nil {
		h.logger.Error("job collection read failed", zap.Error(err))
		jobs = []model.Job{}
	}

	items, pagination := response.Paginate(jobs, c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "jobs listed",
		Data:       items,
		Pagination: pagination,
	})
}

func (h *JobHandler) Get(c *fiber.Ctx) error {
	job, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "job not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "job fetched",
		Data:    job,
	})
}

func (h *JobHandler) Update(c *fiber.Ctx) error {
	var updates storage.Record
	if err := c.BodyParser(&updates); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body",
		}, err)
	}

	job, err := h.repo.Update(c.Params("id"), updates)
	if err != nil {
		return respondError(c, err, "job not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "job updated",
		Data:    job,
	})
}

func (h *JobHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		return respondError(c, err, "job not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "job deleted",
	})
}
