package chat

import (
	"net/http"
	"strings"

	"hearthly-api/internal/logs"
	"hearthly-api/internal/middlewares"
	"hearthly-api/internal/pipeline"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatController struct {
	ChatService ChatServicePort
}

func NewChatController(cs ChatServicePort) *ChatController {
	return &ChatController{ChatService: cs}
}

func (cc *ChatController) Chat(c *gin.Context) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req pipeline.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	log := logs.FromContext(c.Request.Context())
	log.Info("chat request",
		zap.String("language", req.Language),
		zap.Int("message_chars", len(req.Message)),
	)

	resp, err := cc.ChatService.Chat(c.Request.Context(), userID, req)
	if err != nil {
		status, label := pipeline.Classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("chat failed", zap.String("label", label), zap.Error(err))
		} else {
			log.Warn("chat rejected", zap.String("label", label), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": label})
		return
	}

	c.JSON(http.StatusOK, resp)
}
