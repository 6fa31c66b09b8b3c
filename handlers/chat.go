package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/db"
	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/models"
	"github.com/sahiti3636/finwise-ai/mongodb"
)

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// HandleChat answers a chatbot message. Both sides of the exchange are
// appended to the user's MongoDB transcript; transcript failures are logged
// but never block the reply.
func HandleChat(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := db.GetOrCreateProfile(claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching profile", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	reply := Advisor.Chat(c.Request.Context(), req.Message, profile)

	userMsg := &models.ChatMessage{
		UserID:    claims.Subject,
		Text:      req.Message,
		Sender:    models.SenderUser,
		Timestamp: time.Now().Unix(),
	}
	if err := mongodb.CreateMessage(c.Request.Context(), userMsg); err != nil {
		logger.Get().Error("error saving user message", zap.String("user_id", claims.Subject), zap.Error(err))
	}

	assistantMsg := &models.ChatMessage{
		UserID:    claims.Subject,
		Text:      reply.Response,
		Sender:    models.SenderAssistant,
		Timestamp: time.Now().Unix(),
	}
	if err := mongodb.CreateMessage(c.Request.Context(), assistantMsg); err != nil {
		logger.Get().Error("error saving assistant message", zap.String("user_id", claims.Subject), zap.Error(err))
	}

	c.JSON(http.StatusOK, reply)
}

// HandleGetChatHistory returns the user's full transcript, oldest first.
func HandleGetChatHistory(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := mongodb.GetMessagesByUserID(c.Request.Context(), claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching chat history", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if messages == nil {
		messages = []models.ChatMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// HandleClearChatHistory deletes the user's transcript.
func HandleClearChatHistory(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	if err := mongodb.DeleteMessagesByUserID(c.Request.Context(), claims.Subject); err != nil {
		logger.Get().Error("error clearing chat history", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Chat history cleared"})
}
