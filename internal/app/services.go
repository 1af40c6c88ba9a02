package app

import (
	"gorm.io/gorm"

	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
	"github.com/lexibridge/lexibridge-backend/internal/services"
)

type Services struct {
	Scorer     services.MLScorerClient
	Bucket     services.BucketService
	Assessment services.AssessmentService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	scorer := services.NewMLScorerClient(log)

	// Audio storage is optional: without credentials the upload endpoint still
	// answers, it just returns an empty URL.
	bucket, err := services.NewBucketService(log)
	if err != nil {
		log.Warn("Could not init BucketService", "error", err)
		bucket = nil
	}

	assessment := services.NewAssessmentService(
		log,
		reposet.Student,
		reposet.Assessment,
		reposet.AssessmentGame,
		reposet.MlPrediction,
		scorer,
	)

	return Services{
		Scorer:     scorer,
		Bucket:     bucket,
		Assessment: assessment,
	}, nil
}
