package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services"
	"Backend-Uppass-Flows/src/utils"
)

type loginIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

// Login godoc
// @Summary      Log in and receive a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  loginIn  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func Login(c *fiber.Ctx) error {
	var in loginIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	user, err := services.AuthenticateUser(c.Context(), in.Email, in.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(fiber.Map{"token": token, "user": user})
}

// Register godoc
// @Summary      Register a new admin user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body  registerIn  true  "User"
// @Success      201  {object}  models.User
// @Router       /auth/register [post]
func Register(c *fiber.Ctx) error {
	var in registerIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	user := models.User{Email: in.Email, Password: in.Password, Name: in.Name}
	if err := services.RegisterUser(c.Context(), &user); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to register user")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}
