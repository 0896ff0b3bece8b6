package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services/flows"
	"Backend-Uppass-Flows/src/services/guests"
	"Backend-Uppass-Flows/src/services/values"
	"Backend-Uppass-Flows/src/utils"
	"Backend-Uppass-Flows/src/validators"
)

type submissionIn struct {
	Values []validators.ValueInput `json:"values" validate:"required,dive"`
}

// GetFlowForm godoc
// @Summary      Get the fillable form of a flow
// @Description  Returns one entry per visible element: the live slot to render,
// @Description  the slots to hide, and the selectable choices for enum elements.
// @Tags         form
// @Produce      json
// @Param        slug  path  string  true  "Flow slug"
// @Success      200  {array}  models.FormEntry
// @Failure      404  {object}  models.ErrorResponse
// @Router       /form/flows/{slug} [get]
func GetFlowForm(c *fiber.Ctx) error {
	// guest ถูก resolve ตั้งแต่เปิดฟอร์ม ไม่ใช่รอถึงตอน submit
	if _, err := guests.ResolveGuest(c.Context(), c.IP()); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to resolve guest")
	}

	entries, err := values.GetFlowForm(c.Context(), c.Params("slug"))
	if err != nil {
		switch {
		case errors.Is(err, flows.ErrFlowNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Flow not found")
		case errors.Is(err, models.ErrUnknownDatatype):
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to build form")
	}
	return c.JSON(entries)
}

// SubmitFlowForm godoc
// @Summary      Submit values for a flow
// @Description  Each element is validated independently; all problems are
// @Description  returned together as a field error list.
// @Tags         form
// @Accept       json
// @Produce      json
// @Param        slug    path  string        true  "Flow slug"
// @Param        values  body  submissionIn  true  "Submitted values"
// @Success      201  {array}   models.ValueElement
// @Failure      422  {object}  models.ValidationErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /form/flows/{slug}/submit [post]
func SubmitFlowForm(c *fiber.Ctx) error {
	var in submissionIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	guest, err := guests.ResolveGuest(c.Context(), c.IP())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to resolve guest")
	}

	saved, fieldErrs, err := values.SubmitFlow(c.Context(), c.Params("slug"), guest, in.Values)
	if err != nil {
		switch {
		case errors.Is(err, flows.ErrFlowNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Flow not found")
		case errors.Is(err, models.ErrUnknownDatatype):
			// schema/core mismatch ไม่ใช่ความผิด user
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to submit values")
	}
	if len(fieldErrs) > 0 {
		return utils.HandleFieldErrors(c, fieldErrs)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}
