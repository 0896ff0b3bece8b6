package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Uppass-Flows/src/services/uploads"
	"Backend-Uppass-Flows/src/utils"
)

// UploadFile godoc
// @Summary      Upload a file and get its reference
// @Description  The returned reference is the value to submit for a file element.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File"
// @Success      201  {object}  map[string]string
// @Router       /uploads [post]
func UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Missing file")
	}

	ref, err := uploads.SaveUpload(file)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference": ref})
}
