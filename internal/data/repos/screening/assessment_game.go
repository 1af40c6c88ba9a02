package screening

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/lexibridge/lexibridge-backend/internal/domain"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

type AssessmentGameRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, game *types.AssessmentGame) (*types.AssessmentGame, error)
	GetByKey(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, gameNumber int) (*types.AssessmentGame, error)
	GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.AssessmentGame, error)
	CountByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) (int, error)
}

type assessmentGameRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentGameRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentGameRepo {
	repoLog := baseLog.With("repo", "AssessmentGameRepo")
	return &assessmentGameRepo{db: db, log: repoLog}
}

// Upsert replaces the row for (assessment_id, game_number) if one exists,
// otherwise inserts it. Last write wins on concurrent submissions.
func (r *assessmentGameRepo) Upsert(ctx context.Context, tx *gorm.DB, game *types.AssessmentGame) (*types.AssessmentGame, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	existing, err := r.GetByKey(ctx, transaction, game.AssessmentID, game.GameNumber)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		if game.ID == uuid.Nil {
			game.ID = uuid.New()
		}
		if err := transaction.WithContext(ctx).Create(game).Error; err != nil {
			return nil, err
		}
		return game, nil
	}

	game.ID = existing.ID
	game.CreatedAt = existing.CreatedAt
	if err := transaction.WithContext(ctx).
		Model(&types.AssessmentGame{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"game_type":            game.GameType,
			"eye_tracking_data":    game.EyeTrackingData,
			"speech_audio_url":     game.SpeechAudioURL,
			"speech_transcription": game.SpeechTranscription,
			"handwriting_strokes":  game.HandwritingStrokes,
			"response_data":        game.ResponseData,
			"completed_at":         game.CompletedAt,
		}).Error; err != nil {
		return nil, err
	}
	return game, nil
}

func (r *assessmentGameRepo) GetByKey(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, gameNumber int) (*types.AssessmentGame, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.AssessmentGame
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ? AND game_number = ?", assessmentID, gameNumber).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *assessmentGameRepo) GetByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) ([]*types.AssessmentGame, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AssessmentGame
	if err := transaction.WithContext(ctx).
		Where("assessment_id = ?", assessmentID).
		Order("game_number ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assessmentGameRepo) CountByAssessmentID(ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AssessmentGame{}).
		Where("assessment_id = ?", assessmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
