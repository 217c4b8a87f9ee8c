package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the banner, the liveness probe and, when given, the
// metrics exposition handler.
func RegisterRoutes(r *gin.Engine, name string, metricsHandler http.Handler) {
	hc := &HealthController{Name: name}

	r.GET("/", hc.Index)
	r.GET("/health", hc.Health)
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}
}
