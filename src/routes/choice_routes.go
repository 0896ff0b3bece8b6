package routes

import (
	"Backend-Uppass-Flows/src/controllers"
	"Backend-Uppass-Flows/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// choiceRoutes กำหนด route สำหรับ choice catalog (admin)
func choiceRoutes(router fiber.Router) {
	choices := router.Group("/choices", middleware.AuthJWT)
	choices.Post("/", controllers.CreateChoice)
	choices.Get("/", controllers.GetChoices)
	choices.Delete("/:id", controllers.DeleteChoice)

	groups := router.Group("/choice-groups", middleware.AuthJWT)
	groups.Post("/", controllers.CreateChoiceGroup)
	groups.Get("/", controllers.GetChoiceGroups)
	groups.Put("/:id", controllers.UpdateChoiceGroup)
	groups.Delete("/:id", controllers.DeleteChoiceGroup)
}
