package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lexibridge/lexibridge-backend/internal/app"
	"github.com/lexibridge/lexibridge-backend/internal/observability"
	"github.com/lexibridge/lexibridge-backend/internal/platform/envutil"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "lexibridge-backend",
		Environment: envutil.Str("APP_ENV", "development"),
		Version:     envutil.Str("APP_VERSION", "dev"),
	})
	if shutdownTracing != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				log.Warn("otel shutdown failed", "error", err)
			}
		}()
	}

	a, err := app.New()
	if err != nil {
		log.Error("Failed to init app", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	port := a.Cfg.Port
	fmt.Printf("Server listening on :%s\n", port)
	if err := a.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
