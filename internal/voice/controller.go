package voice

import (
	"net/http"

	"hearthly-api/internal/logs"
	"hearthly-api/internal/pipeline"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VoiceController struct {
	VoiceService VoiceServicePort
}

func NewVoiceController(vs VoiceServicePort) *VoiceController {
	return &VoiceController{VoiceService: vs}
}

// ProcessAudio takes a base64 recording and answers with the reply text and
// its base64 MP3 rendition.
func (vc *VoiceController) ProcessAudio(c *gin.Context) {
	var req pipeline.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	log := logs.FromContext(c.Request.Context())
	log.Info("voice request",
		zap.String("language", req.Language),
		zap.Bool("genz_mode", req.GenZ),
		zap.Int("audio_b64_len", len(req.Audio)),
	)

	resp, err := vc.VoiceService.Voice(c.Request.Context(), req)
	if err != nil {
		status, label := pipeline.Classify(err)
		if status >= http.StatusInternalServerError {
			log.Error("voice failed", zap.String("label", label), zap.Error(err))
		} else {
			log.Warn("voice rejected", zap.String("label", label), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": label})
		return
	}

	c.JSON(http.StatusOK, resp)
}
