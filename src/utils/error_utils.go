// error_utils.go
package utils

import (
	"Backend-Uppass-Flows/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleFieldErrors ส่งปัญหาราย field ทั้งหมดกลับไปพร้อมกัน (422)
func HandleFieldErrors(c *fiber.Ctx, errs []models.FieldError) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ValidationErrorResponse{
		Status: fiber.StatusUnprocessableEntity,
		Errors: errs,
	})
}
