package app

import (
	"gorm.io/gorm"

	"github.com/lexibridge/lexibridge-backend/internal/data/repos"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

type Repos struct {
	Student        repos.StudentRepo
	Assessment     repos.AssessmentRepo
	AssessmentGame repos.AssessmentGameRepo
	MlPrediction   repos.MlPredictionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Student:        repos.NewStudentRepo(db, log),
		Assessment:     repos.NewAssessmentRepo(db, log),
		AssessmentGame: repos.NewAssessmentGameRepo(db, log),
		MlPrediction:   repos.NewMlPredictionRepo(db, log),
	}
}
