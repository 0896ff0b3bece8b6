package routes

import (
	"Backend-Uppass-Flows/src/controllers"
	"Backend-Uppass-Flows/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// flowRoutes กำหนด route สำหรับ flow/group/element management (admin)
func flowRoutes(router fiber.Router) {
	flows := router.Group("/flows", middleware.AuthJWT)

	flows.Post("/", controllers.CreateFlow)
	flows.Get("/", controllers.GetFlows)
	flows.Get("/:slug", controllers.GetFlowDetail)
	flows.Put("/:slug", controllers.UpdateFlow)
	flows.Delete("/:slug", controllers.DeleteFlow)

	flows.Post("/:slug/groups", controllers.CreateFormGroup)

	groups := router.Group("/groups", middleware.AuthJWT)
	groups.Put("/:slug", controllers.UpdateFormGroup)
	groups.Delete("/:slug", controllers.DeleteFormGroup)
	groups.Post("/:slug/elements", controllers.CreateFormElement)

	elements := router.Group("/elements", middleware.AuthJWT)
	elements.Put("/:slug", controllers.UpdateFormElement)
	elements.Delete("/:slug", controllers.DeleteFormElement)
}
