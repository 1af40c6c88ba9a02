package screening

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/lexibridge/lexibridge-backend/internal/domain"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

// MlPredictionRepo is insert-only; predictions are never updated or deleted.
type MlPredictionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, prediction *types.MlPrediction) (*types.MlPrediction, error)
	GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.MlPrediction, error)
	GetByAssessmentAndType(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, predictionType string) ([]*types.MlPrediction, error)
}

type mlPredictionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMlPredictionRepo(db *gorm.DB, baseLog *logger.Logger) MlPredictionRepo {
	repoLog := baseLog.With("repo", "MlPredictionRepo")
	return &mlPredictionRepo{db: db, log: repoLog}
}

func (r *mlPredictionRepo) Create(ctx context.Context, tx *gorm.DB, prediction *types.MlPrediction) (*types.MlPrediction, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if prediction.ID == uuid.Nil {
		prediction.ID = uuid.New()
	}
	if err := transaction.WithContext(ctx).Create(prediction).Error; err != nil {
		return nil, err
	}
	return prediction, nil
}

func (r *mlPredictionRepo) GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.MlPrediction, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MlPrediction
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mlPredictionRepo) GetByAssessmentAndType(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, predictionType string) ([]*types.MlPrediction, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MlPrediction
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ? AND prediction_type = ?", assessmentID, predictionType).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
