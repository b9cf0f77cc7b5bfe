package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourmuse/internal/models/request_models"
	"tourmuse/internal/services"
	"tourmuse/pkg/middleware"
	"tourmuse/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{chatService: chatService}
}

func (ch *ChatController) Message(c *gin.Context) {
	session := middleware.GetSession(c)

	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := ch.chatService.Respond(c.Request.Context(), session.UserID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "")
}

func (ch *ChatController) History(c *gin.Context) {
	session := middleware.GetSession(c)
	utils.RespondSuccess(c, ch.chatService.History(session.UserID), "")
}
