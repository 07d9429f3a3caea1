package handler

import (
	"errors"
	"strings"

	"resume-relevance/internal/auth"
	"resume-relevance/internal/dto"
	"resume-relevance/internal/model"
	"resume-relevance/internal/repository"
	"resume-relevance/internal/storage"
	"resume-relevance/internal/util"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users    *repository.UserRepository
	sessions *auth.SessionStore
	logger   *zap.Logger
}

func NewAuthHandler(users *repository.UserRepository, sessions *auth.SessionStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/auth/register", h.Register)
	api.Post("/auth/login", h.Login)
	api.Post("/auth/logout", h.Logout)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	creds, err := parseCredentials(c)
	if err != nil {
		return err
	}

	if _, err := h.users.FindByUsername(creds.Username); err == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "user already exists",
		})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return respondError(c, err, "user not found")
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return respondError(c, err, "user not found")
	}

	user, err := h.users.Create(&model.User{
		Username:     creds.Username,
		PasswordHash: hash,
		Role:         "user",
	})
	if err != nil {
		return respondError(c, err, "user not found")
	}

	h.logger.Info("user registered", zap.String("username", user.Username))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "user registered",
		Data:    userToDTO(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	creds, err := parseCredentials(c)
	if err != nil {
		return err
	}

	user, findErr := h.users.FindByUsername(creds.Username)
	if findErr != nil || !auth.VerifyPassword(creds.Password, user.PasswordHash) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "invalid credentials",
		})
	}

	session := h.sessions.Create(user.Username, user.Role)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "logged in",
		Data: dto.SessionDTO{
			Token:     session.Token,
			Username:  session.Username,
			Role:      session.Role,
			ExpiresAt: session.ExpiresAt,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		h.sessions.Destroy(token)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "logged out",
	})
}

func parseCredentials(c *fiber.Ctx) (*dto.Credentials, error) {
	var creds dto.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid JSON body",
		}, err)
	}
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return nil, util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "username and password are required",
		})
	}
	return &creds, nil
}

func userToDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
