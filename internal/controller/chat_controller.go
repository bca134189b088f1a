package controller

import (
	"floria-be/internal/dto"
	"floria-be/internal/pkg/serverutils"
	"floria-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("message", c.SendMessage)
	h.Get("history/:session_id", c.GetHistory)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.HandleMessage(ctx.Context(), req.SessionID, req.Message)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("session_id")

	turns, found := c.chatService.History(sessionID)
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	history := make([]dto.HistoryTurnDTO, 0, len(turns))
	for _, turn := range turns {
		history = append(history, dto.HistoryTurnDTO{Role: turn.Role, Content: turn.Content})
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", history))
}
