package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/lexibridge/lexibridge-backend/internal/http"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers) *gin.Engine {
	log.Info("Wiring router...")
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:               log,
		AssessmentHandler: handlerset.Assessment,
		UploadHandler:     handlerset.Upload,
		HealthHandler:     handlerset.Health,
	})
}
