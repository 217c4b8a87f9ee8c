package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Name string
}

// Health is the liveness probe. It checks no dependencies.
func (hc *HealthController) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (hc *HealthController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": hc.Name, "status": "ok"})
}
