package handler

import (
	"github.com/labstack/echo/v4"

	"unitrade/internal/domain/entity"
	"unitrade/internal/usecase"
	"unitrade/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content" validate:"required,max=2000"`
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	messages, err := h.messageUseCase.ListForAccount(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *MessageHandler) ListConversations(c echo.Context) error {
	uid := c.Get("uid").(string)
	conversations, err := h.messageUseCase.Conversations(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, conversations)
}

func (h *MessageHandler) GetConversation(c echo.Context) error {
	uid := c.Get("uid").(string)
	messages, err := h.messageUseCase.Conversation(c.Request().Context(), uid, c.Param("otherId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	message, err := h.messageUseCase.Send(c.Request().Context(), uid, req.ReceiverID, req.Content, entity.MessageChat)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)
	flipped, err := h.messageUseCase.MarkRead(c.Request().Context(), uid, c.Param("otherId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"marked": flipped})
}
