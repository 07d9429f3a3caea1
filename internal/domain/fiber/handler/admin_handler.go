package handler

import (
	"resume-relevance/internal/dto"
	"resume-relevance/internal/middleware"
	"resume-relevance/internal/model"
	"resume-relevance/internal/repository"
	"resume-relevance/internal/response"
	"resume-relevance/internal/storage"
	"resume-relevance/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminHandler struct {
	users  *repository.UserRepository
	logs   *repository.AuditLogRepository
	logger *zap.Logger
}

func NewAdminHandler(users *repository.UserRepository, logs *repository.AuditLogRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{users: users, logs: logs, logger: logger}
}

func (h *AdminHandler) RegisterRoutes(api fiber.Router) {
	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.Get("/users", h.Users)
	admin.Get("/logs", h.Logs)
}

func (h *AdminHandler) Users(c *fiber.Ctx) error {
	users, err := h.users.GetAll()
	if err != nil {
		h.logger.Error("user collection read failed", zap.Error(err))
		users = []model.User{}
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, userToDTO(&users[i]))
	}

	items, pagination := response.Paginate(dtos, c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "users listed",
		Data:       items,
		Pagination: pagination,
	})
}

func (h *AdminHandler) Logs(c *fiber.Ctx) error {
	entries, err := h.logs.GetAll()
	if err != nil {
		h.logger.Error("audit log read failed", zap.Error(err))
		entries = []storage.Record{}
	}

	items, pagination := response.Paginate(entries, c.QueryInt("page", 1), c.QueryInt("page_size", 50))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "audit log listed",
		Data:       items,
		Pagination: pagination,
	})
}
