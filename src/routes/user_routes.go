package routes

import (
	"Backend-Uppass-Flows/src/controllers"
	"Backend-Uppass-Flows/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(router fiber.Router) {
	users := router.Group("/users", middleware.AuthJWT)
	users.Get("/:id", controllers.GetUser)
	users.Delete("/:id", controllers.DeleteUser)
}
