package middleware

import (
	"errors"
	"time"

	"resume-relevance/internal/repository"
	"resume-relevance/internal/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Audit appends one entry per request to the audit log collection. A failed
// append never fails the request, it only gets logged.
func Audit(logs *repository.AuditLogRepository, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		username := ""
		if session := SessionFromCtx(c); session != nil {
			username = session.Username
		}

		entry := storage.Record{
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"user":        username,
			"ip":          c.IP(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if appendErr := logs.Append(entry); appendErr != nil {
			logger.Warn("audit log write failed", zap.Error(appendErr))
		}

		return err
	}
}
