package serverutils

import (
	"errors"

	"entity-notes-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps errors escaping controllers onto the response
// envelope. AppError codes keep their own status so "not permitted" renders
// distinctly from "bad input"; anything unknown becomes an opaque 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ae *apperror.AppError
		if errors.As(err, &ae) {
			return ctx.Status(ae.Status).JSON(ErrorResponse(string(ae.Code), ae.Message))
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(ErrorResponse("", fe.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("", "internal server error"))
	}
}
