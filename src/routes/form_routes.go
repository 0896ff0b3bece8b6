package routes

import (
	"Backend-Uppass-Flows/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// formRoutes ฝั่ง public: เปิดฟอร์มและส่งคำตอบ ไม่ต้องล็อกอิน
func formRoutes(router fiber.Router) {
	form := router.Group("/form/flows")

	form.Get("/:slug", controllers.GetFlowForm)
	form.Post("/:slug/submit", controllers.SubmitFlowForm)
}
