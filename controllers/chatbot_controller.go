package controllers

import (
	"errors"
	"net/http"
	"strings"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChatMessageReq struct {
	Message string `json:"message"`
}

type ChatbotController struct {
	Chatbot *services.ChatbotService
}

func NewChatbotController(svc *services.ChatbotService) *ChatbotController {
	return &ChatbotController{Chatbot: svc}
}

// POST /api/chatbot/message — รูปแบบ response ต่างจาก endpoint อื่น:
// {reply} หรือ {error} เพราะหน้า chat เดิมอ่าน format นี้
func (cc *ChatbotController) Message(c *gin.Context) {
	var req ChatMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := cc.Chatbot.SendMessage(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, services.ErrChatNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "chatbot is not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
