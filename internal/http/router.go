package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/lexibridge/lexibridge-backend/internal/http/handlers"
	httpMW "github.com/lexibridge/lexibridge-backend/internal/http/middleware"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AssessmentHandler *httpH.AssessmentHandler
	UploadHandler     *httpH.UploadHandler
	HealthHandler     *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("lexibridge-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AssessmentHandler != nil {
			assessments := api.Group("/assessments")
			assessments.POST("/start", cfg.AssessmentHandler.Start)
			assessments.POST("/:assessmentId/games/:gameNumber", cfg.AssessmentHandler.SubmitGame)
			assessments.POST("/:assessmentId/complete", cfg.AssessmentHandler.Complete)
			assessments.GET("/:assessmentId", cfg.AssessmentHandler.GetByID)
			assessments.GET("/student/:studentId", cfg.AssessmentHandler.ListForStudent)
		}

		if cfg.UploadHandler != nil {
			api.POST("/uploads/audio", cfg.UploadHandler.UploadAudio)
		}
	}

	return r
}
