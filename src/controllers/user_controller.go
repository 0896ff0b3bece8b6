package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/services/users"
	"Backend-Uppass-Flows/src/utils"
)

// GetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  models.User
// @Router       /users/{id} [get]
func GetUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid user id")
	}

	user, err := users.GetUserByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return c.JSON(user)
}

// DeleteUser godoc
// @Summary      Delete a user (their flows keep existing without an owner)
// @Tags         users
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Router       /users/{id} [delete]
func DeleteUser(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid user id")
	}

	if err := users.DeleteUser(c.Context(), id); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
