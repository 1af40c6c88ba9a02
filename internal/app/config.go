package app

import (
	"time"

	"github.com/lexibridge/lexibridge-backend/internal/platform/envutil"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

type Config struct {
	Port             string
	MLServiceURL     string
	MLServiceTimeout time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := envutil.Str("PORT", "8080")
	mlServiceURL := envutil.Str("ML_SERVICE_URL", "http://localhost:8000")
	mlTimeoutSeconds := envutil.Int("ML_SERVICE_TIMEOUT_SECONDS", 30)
	log.Info("Configuration loaded", "port", port, "ml_service_url", mlServiceURL)
	return Config{
		Port:             port,
		MLServiceURL:     mlServiceURL,
		MLServiceTimeout: time.Duration(mlTimeoutSeconds) * time.Second,
	}
}
