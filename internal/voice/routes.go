package voice

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, voiceService VoiceServicePort) {
	voiceController := NewVoiceController(voiceService)

	r.POST("/process-audio", voiceController.ProcessAudio)
}
