package db

import (
	"gorm.io/gorm"

	types "github.com/lexibridge/lexibridge-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Roster (owned elsewhere; migrated here for local/dev setups)
		&types.Student{},

		// Screening core
		&types.Assessment{},
		&types.AssessmentGame{},
		&types.MlPrediction{},
	)
}
