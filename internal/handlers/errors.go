package handlers

import (
	"errors"

	"grubdash/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// internalErrorMessage replaces unexpected error text, which is only logged.
const internalErrorMessage = "Internal server error"

// ErrorHandler renders every error returned from a route as {"message": ...}.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.Status(verr.Status).JSON(fiber.Map{"message": verr.Message})
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return c.Status(ferr.Code).JSON(fiber.Map{"message": ferr.Message})
		}

		log.Error("request failed", zap.String("method", c.Method()), zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": internalErrorMessage})
	}
}
