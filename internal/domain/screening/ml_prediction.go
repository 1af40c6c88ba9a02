package screening

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PredictionTypeEyeTracking = "dyslexia_risk_eye_tracking"
	PredictionTypeSpeech      = "dyslexia_risk_speech"
	PredictionTypeScreening   = "screening_overall"
)

// MlPrediction is an append-only scored inference tied to an assessment.
// Per-game predictions accumulate during play; exactly one screening_overall
// row is produced at completion (eventually consistent, see Complete).
type MlPrediction struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AssessmentID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"assessment_id"`
	StudentID       *uuid.UUID     `gorm:"type:uuid;index" json:"student_id,omitempty"`
	PredictionType  string         `gorm:"column:prediction_type;not null;index" json:"prediction_type"`
	RiskScore       float64        `gorm:"column:risk_score;not null" json:"risk_score"`
	ConfidenceScore float64        `gorm:"column:confidence_score;not null" json:"confidence_score"`
	Details         datatypes.JSON `gorm:"column:details;type:jsonb" json:"details,omitempty"`
	CreatedAt       time.Time      `gorm:"not null;index" json:"created_at"`
}

func (MlPrediction) TableName() string { return "ml_prediction" }
