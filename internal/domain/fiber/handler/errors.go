package handler

import (
	"errors"

	"resume-relevance/internal/storage"
	"resume-relevance/internal/util"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors onto the JSON error envelope:
// validation failures are 400 with per-field details, missing records 404,
// anything else is a storage/internal failure.
func respondError(c *fiber.Ctx, err error, notFoundMessage string) error {
	var formErr *util.FormError
	if errors.As(err, &formErr) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: formErr.Message,
			Details: formErr.Errors,
		}, err)
	}
	if errors.Is(err, storage.ErrNotFound) {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: notFoundMessage,
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Message: "internal error",
	}, err)
}
