package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services/choices"
	"Backend-Uppass-Flows/src/utils"
)

type choiceIn struct {
	Value string `json:"value" validate:"required"`
}

type choiceGroupIn struct {
	Name      string   `json:"name" validate:"required"`
	ChoiceIDs []string `json:"choiceIds"`
}

// CreateChoice godoc
// @Summary      Add a choice to the catalog
// @Tags         choices
// @Accept       json
// @Produce      json
// @Param        choice  body  choiceIn  true  "Choice"
// @Success      201  {object}  models.Choice
// @Router       /choices [post]
func CreateChoice(c *fiber.Ctx) error {
	var in choiceIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	choice := models.Choice{Value: in.Value}
	if err := choices.CreateChoice(c.Context(), &choice); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create choice")
	}
	return c.Status(fiber.StatusCreated).JSON(choice)
}

// GetChoices godoc
// @Summary      Get the whole choice catalog
// @Tags         choices
// @Produce      json
// @Success      200  {array}  models.Choice
// @Router       /choices [get]
func GetChoices(c *fiber.Ctx) error {
	all, err := choices.GetChoices(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch choices")
	}
	return c.JSON(all)
}

// DeleteChoice godoc
// @Summary      Delete a choice (refused while any group holds it)
// @Tags         choices
// @Param        id  path  string  true  "Choice ID"
// @Success      204
// @Failure      409  {object}  models.ErrorResponse
// @Router       /choices/{id} [delete]
func DeleteChoice(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid choice id")
	}

	if err := choices.DeleteChoice(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, choices.ErrChoiceInUse):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, choices.ErrChoiceNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Choice not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete choice")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateChoiceGroup godoc
// @Summary      Create a reusable choice group
// @Tags         choiceGroups
// @Accept       json
// @Produce      json
// @Param        group  body  choiceGroupIn  true  "Choice group"
// @Success      201  {object}  models.ChoiceGroup
// @Router       /choice-groups [post]
func CreateChoiceGroup(c *fiber.Ctx) error {
	var in choiceGroupIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	choiceIDs, err := parseObjectIDs(in.ChoiceIDs)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	group := models.ChoiceGroup{Name: in.Name, ChoiceIDs: choiceIDs}
	if err := choices.CreateChoiceGroup(c.Context(), &group); err != nil {
		if errors.Is(err, choices.ErrChoiceNotFound) {
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create choice group")
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

// GetChoiceGroups godoc
// @Summary      Get all choice groups
// @Tags         choiceGroups
// @Produce      json
// @Success      200  {array}  models.ChoiceGroup
// @Router       /choice-groups [get]
func GetChoiceGroups(c *fiber.Ctx) error {
	groups, err := choices.GetChoiceGroups(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch choice groups")
	}
	return c.JSON(groups)
}

// UpdateChoiceGroup godoc
// @Summary      Update a choice group's name and members
// @Tags         choiceGroups
// @Accept       json
// @Produce      json
// @Param        id     path  string         true  "Choice group ID"
// @Param        group  body  choiceGroupIn  true  "Choice group"
// @Success      200  {object}  models.ChoiceGroup
// @Router       /choice-groups/{id} [put]
func UpdateChoiceGroup(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid choice group id")
	}

	var in choiceGroupIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	choiceIDs, err := parseObjectIDs(in.ChoiceIDs)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	group, err := choices.UpdateChoiceGroup(c.Context(), id, in.Name, choiceIDs)
	if err != nil {
		switch {
		case errors.Is(err, choices.ErrChoiceGroupNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Choice group not found")
		case errors.Is(err, choices.ErrChoiceNotFound):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update choice group")
	}
	return c.JSON(group)
}

// DeleteChoiceGroup godoc
// @Summary      Delete a choice group (refused while referenced by elements)
// @Tags         choiceGroups
// @Param        id  path  string  true  "Choice group ID"
// @Success      204
// @Failure      409  {object}  models.ErrorResponse
// @Router       /choice-groups/{id} [delete]
func DeleteChoiceGroup(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid choice group id")
	}

	if err := choices.DeleteChoiceGroup(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, choices.ErrChoiceGroupInUse):
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, choices.ErrChoiceGroupNotFound):
			return utils.HandleError(c, fiber.StatusNotFound, "Choice group not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete choice group")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		oid, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, errors.New("invalid choice id: " + h)
		}
		ids = append(ids, oid)
	}
	return ids, nil
}
