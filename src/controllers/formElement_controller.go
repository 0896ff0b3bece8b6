package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services/flows"
	"Backend-Uppass-Flows/src/utils"
)

type formElementIn struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Datatype      string `json:"datatype" validate:"required,oneof=text float int date bool enum file"`
	Required      bool   `json:"required"`
	DisplayOrder  int    `json:"displayOrder"`
	ChoiceGroupID string `json:"choiceGroupId"`
	IsPublic      *bool  `json:"isPublic"`
}

func (in *formElementIn) toModel() (*models.FormElement, error) {
	element := &models.FormElement{
		Name:         in.Name,
		Description:  in.Description,
		Datatype:     models.Datatype(in.Datatype),
		Required:     in.Required,
		DisplayOrder: in.DisplayOrder,
		IsPublic:     true,
	}
	if in.IsPublic != nil {
		element.IsPublic = *in.IsPublic
	}
	if in.ChoiceGroupID != "" {
		oid, err := primitive.ObjectIDFromHex(in.ChoiceGroupID)
		if err != nil {
			return nil, errors.New("invalid choiceGroupId")
		}
		element.ChoiceGroupID = &oid
	}
	return element, nil
}

// CreateFormElement godoc
// @Summary      Create a form element under a form group
// @Tags         formElements
// @Accept       json
// @Produce      json
// @Param        slug     path  string         true  "Form group slug"
// @Param        element  body  formElementIn  true  "Form element"
// @Success      201  {object}  models.FormElement
// @Failure      422  {object}  models.ErrorResponse  "enum/choice group invariant violated"
// @Router       /groups/{slug}/elements [post]
func CreateFormElement(c *fiber.Ctx) error {
	var in formElementIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	group, err := flows.GetFormGroupBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, flows.ErrFormGroupNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form group not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch form group")
	}

	element, err := in.toModel()
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	element.FormGroupID = group.ID

	if err := flows.CreateFormElement(c.Context(), element); err != nil {
		if errors.Is(err, models.ErrSchemaInvalid) {
			return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create form element")
	}
	return c.Status(fiber.StatusCreated).JSON(element)
}

// UpdateFormElement godoc
// @Summary      Update a form element
// @Tags         formElements
// @Accept       json
// @Produce      json
// @Param        slug     path  string         true  "Form element slug"
// @Param        element  body  formElementIn  true  "Form element"
// @Success      200  {object}  models.FormElement
// @Failure      422  {object}  models.ErrorResponse  "enum/choice group invariant violated"
// @Router       /elements/{slug} [put]
func UpdateFormElement(c *fiber.Ctx) error {
	var in formElementIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	update, err := in.toModel()
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	element, err := flows.UpdateFormElement(c.Context(), c.Params("slug"), update)
	if err != nil {
		switch {
		case errors.Is(err, flows.ErrFormElementNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Form element not found")
		case errors.Is(err, models.ErrSchemaInvalid):
			return utils.HandleError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update form element")
	}
	return c.JSON(element)
}

// DeleteFormElement godoc
// @Summary      Delete a form element and its values
// @Tags         formElements
// @Param        slug  path  string  true  "Form element slug"
// @Success      204
// @Router       /elements/{slug} [delete]
func DeleteFormElement(c *fiber.Ctx) error {
	err := flows.DeleteFormElement(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, flows.ErrFormElementNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Form element not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete form element")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
