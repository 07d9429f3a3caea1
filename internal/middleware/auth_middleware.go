package middleware

import (
	"strings"

	"resume-relevance/internal/auth"
	"resume-relevance/internal/util"

	"github.com/gofiber/fiber/v2"
)

const sessionLocalsKey = "session"

// SessionAuth resolves the bearer token into a session and stashes it in
// the request locals. It never rejects by itself; RequireAuth/RequireAdmin
// do that where a route needs it.
func SessionAuth(sessions *auth.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if session, found := sessions.Get(token); found {
				c.Locals(sessionLocalsKey, session)
			}
		}
		return c.Next()
	}
}

func SessionFromCtx(c *fiber.Ctx) *auth.Session {
	session, _ := c.Locals(sessionLocalsKey).(*auth.Session)
	return session
}

func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionFromCtx(c) == nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "authentication required",
			})
		}
		return c.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFromCtx(c)
		if session == nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "authentication required",
			})
		}
		if session.Role != "admin" {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusForbidden,
				Message: "admin role required",
			})
		}
		return c.Next()
	}
}
