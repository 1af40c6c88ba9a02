package app

import (
	httpH "github.com/lexibridge/lexibridge-backend/internal/http/handlers"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

type Handlers struct {
	Assessment *httpH.AssessmentHandler
	Upload     *httpH.UploadHandler
	Health     *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Assessment: httpH.NewAssessmentHandler(services.Assessment),
		Upload:     httpH.NewUploadHandler(log, services.Bucket),
		Health:     httpH.NewHealthHandler(services.Scorer),
	}
}
