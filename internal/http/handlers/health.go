package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/lexibridge/lexibridge-backend/internal/http/response"
	"github.com/lexibridge/lexibridge-backend/internal/services"
)

type HealthHandler struct {
	scorer services.MLScorerClient
}

func NewHealthHandler(scorer services.MLScorerClient) *HealthHandler {
	return &HealthHandler{scorer: scorer}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	mlHealthy := false
	if h.scorer != nil {
		mlHealthy = h.scorer.CheckHealth(c.Request.Context())
	}
	response.RespondOK(c, gin.H{
		"status":     "ok",
		"ml_service": mlHealthy,
	})
}
