package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-Uppass-Flows/src/models"
	"Backend-Uppass-Flows/src/services/flows"
	"Backend-Uppass-Flows/src/utils"
)

type flowIn struct {
	Name     string `json:"name" validate:"required"`
	IsPublic *bool  `json:"isPublic"`
}

// CreateFlow godoc
// @Summary      Create a new flow
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        flow  body  flowIn  true  "Flow"
// @Success      201  {object}  models.Flow
// @Router       /flows [post]
func CreateFlow(c *fiber.Ctx) error {
	var in flowIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	if err := utils.ValidateStruct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, utils.ValidationMessage(err))
	}

	flow := models.Flow{
		Name:     in.Name,
		IsPublic: true,
	}
	if in.IsPublic != nil {
		flow.IsPublic = *in.IsPublic
	}

	// owner มาจาก token ของ admin ที่ล็อกอิน
	if userID, ok := c.Locals("userId").(string); ok && userID != "" {
		if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
			flow.OwnerID = &oid
		}
	}

	if err := flows.CreateFlow(c.Context(), &flow); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create flow")
	}

	return c.Status(fiber.StatusCreated).JSON(flow)
}

// GetFlows godoc
// @Summary      Get all flows with pagination, search, and sorting
// @Tags         flows
// @Produce      json
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Items per page"
// @Param        search  query  string  false  "Search by name"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /flows [get]
func GetFlows(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	result, err := flows.GetFlows(c.Context(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch flows")
	}
	return c.JSON(result)
}

// GetFlowDetail godoc
// @Summary      Get a flow with its groups and elements
// @Tags         flows
// @Produce      json
// @Param        slug  path  string  true  "Flow slug"
// @Success      200  {object}  models.FlowWithGroups
// @Failure      404  {object}  models.ErrorResponse
// @Router       /flows/{slug} [get]
func GetFlowDetail(c *fiber.Ctx) error {
	detail, err := flows.GetFlowDetail(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, flows.ErrFlowNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Flow not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch flow")
	}
	return c.JSON(detail)
}

// UpdateFlow godoc
// @Summary      Update a flow (slug is re-derived from the new name)
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        slug  path  string  true  "Flow slug"
// @Param        flow  body  flowIn  true  "Flow"
// @Success      200  {object}  models.Flow
// @Router       /flows/{slug} [put]
func UpdateFlow(c *fiber.Ctx) error {
	var in flowIn
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

	flow, err := flows.UpdateFlow(c.Context(), c.Params("slug"), in.Name, isPublic)
	if err != nil {
		if errors.Is(err, flows.ErrFlowNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Flow not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update flow")
	}
	return c.JSON(flow)
}

// DeleteFlow godoc
// @Summary      Delete a flow and all of its groups, elements and values
// @Tags         flows
// @Param        slug  path  string  true  "Flow slug"
// @Success      204
// @Router       /flows/{slug} [delete]
func DeleteFlow(c *fiber.Ctx) error {
	err := flows.DeleteFlow(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, flows.ErrFlowNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Flow not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete flow")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
