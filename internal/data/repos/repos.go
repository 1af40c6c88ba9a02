package repos

import (
	"gorm.io/gorm"

	"github.com/lexibridge/lexibridge-backend/internal/data/repos/screening"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

type StudentRepo = screening.StudentRepo
type AssessmentRepo = screening.AssessmentRepo
type AssessmentGameRepo = screening.AssessmentGameRepo
type MlPredictionRepo = screening.MlPredictionRepo

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	return screening.NewStudentRepo(db, baseLog)
}
func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return screening.NewAssessmentRepo(db, baseLog)
}
func NewAssessmentGameRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentGameRepo {
	return screening.NewAssessmentGameRepo(db, baseLog)
}
func NewMlPredictionRepo(db *gorm.DB, baseLog *logger.Logger) MlPredictionRepo {
	return screening.NewMlPredictionRepo(db, baseLog)
}
