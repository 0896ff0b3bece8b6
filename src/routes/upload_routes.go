package routes

import (
	"Backend-Uppass-Flows/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func uploadRoutes(router fiber.Router) {
	router.Post("/uploads", controllers.UploadFile)
}
