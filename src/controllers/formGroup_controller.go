package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services/flows"
	"Backend-Uppass-Flows/src/utils"
)

type formGroupIn struct {
	Name         string `json:"name" validate:"required"`
	DisplayOrder int    `json:"displayOrder"`
	IsPublic     *bool  `json:"isPublic"`
}

// CreateFormGroup godoc
// @Summary      Create a form group under a flow
// @Tags         formGroups
// @Accept       json
// @Produce      json
// @Param        slug   path  string       true  "Flow slug"
// @Param        group  body  formGroupIn  true  "Form group"
// @Success      201  {object}  models.FormGroup
// @Router       /flows/{slug}/groups [post]
func CreateFormGroup(c *fiber.Ctx) error {
	var in formGroupIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	flow, err := flows.GetFlowBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, flows.ErrFlowNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Flow not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch flow")
	}

	group := models.FormGroup{
		FlowID:       flow.ID,
		Name:         in.Name,
		DisplayOrder: in.DisplayOrder,
		IsPublic:     true,
	}
	if in.IsPublic != nil {
		group.IsPublic = *in.IsPublic
	}

	if err := flows.CreateFormGroup(c.Context(), &group); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create form group")
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// UpdateFormGroup godoc
// @Summary      Update a form group
// @Tags         formGroups
// @Accept       json
// @Produce      json
// @Param        slug   path  string       true  "Form group slug"
// @Param        group  body  formGroupIn  true  "Form group"
// @Success      200  {object}  models.FormGroup
// @Router       /groups/{slug} [put]
func UpdateFormGroup(c *fiber.Ctx) error {
	var in formGroupIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	group, err := flows.UpdateFormGroup(c.Context(), c.Params("slug"), in.Name, in.DisplayOrder, isPublic)
	if err != nil {
		if errors.Is(err, flows.ErrFormGroupNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form group not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update form group")
	}
	return c.JSON(group)
}

// DeleteFormGroup godoc
// @Summary      Delete a form group with its elements and values
// @Tags         formGroups
// @Param        slug  path  string  true  "Form group slug"
// @Success      204
// @Router       /groups/{slug} [delete]
func DeleteFormGroup(c *fiber.Ctx) error {
	err := flows.DeleteFormGroup(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, flows.ErrFormGroupNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form group not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete form group")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
