package chat

import (
	"hearthly-api/internal/auth"
	"hearthly-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, chatService ChatServicePort, verifier auth.Verifier) {
	chatController := NewChatController(chatService)

	r.POST("/chat", middlewares.AuthMiddleware(verifier), chatController.Chat)
}
