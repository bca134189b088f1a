package controller

import (
	"floria-be/internal/dto"
	"floria-be/internal/pkg/serverutils"
	"floria-be/pkg/tools"

	"github.com/gofiber/fiber/v2"
)

type IToolController interface {
	RegisterRoutes(r fiber.Router)
	ListTools(ctx *fiber.Ctx) error
	ExecuteTool(ctx *fiber.Ctx) error
}

type toolController struct {
	registry *tools.Registry
}

func NewToolController(registry *tools.Registry) IToolController {
	return &toolController{
		registry: registry,
	}
}

func (c *toolController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tools/v1")
	h.Get("", c.ListTools)
	h.Post("execute", c.ExecuteTool)
}

func (c *toolController) ListTools(ctx *fiber.Ctx) error {
	res := dto.ListToolsResponse{AvailableTools: c.registry.Names()}
	return ctx.JSON(serverutils.SuccessResponse("Success list tools", res))
}

// ExecuteTool runs a registered tool directly. The envelope carries its own
// success flag, so the HTTP status stays 200 for tool-level failures.
func (c *toolController) ExecuteTool(ctx *fiber.Ctx) error {
	var req dto.ExecuteToolRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res := c.registry.Execute(ctx.Context(), req.Tool, req.Arguments)
	return ctx.JSON(serverutils.SuccessResponse("Success execute tool", res))
}
