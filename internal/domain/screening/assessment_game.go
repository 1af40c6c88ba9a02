package screening

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AssessmentGame is one completed game inside an assessment, keyed by
// (assessment_id, game_number). Resubmission overwrites the row in place.
type AssessmentGame struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AssessmentID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_assessment_game_number" json:"assessment_id"`
	GameNumber          int            `gorm:"column:game_number;not null;uniqueIndex:idx_assessment_game_number" json:"game_number"`
	GameType            string         `gorm:"column:game_type;not null" json:"game_type"`
	EyeTrackingData     datatypes.JSON `gorm:"column:eye_tracking_data;type:jsonb" json:"eye_tracking_data,omitempty"`
	SpeechAudioURL      string         `gorm:"column:speech_audio_url" json:"speech_audio_url,omitempty"`
	SpeechTranscription string         `gorm:"column:speech_transcription" json:"speech_transcription,omitempty"`
	HandwritingStrokes  datatypes.JSON `gorm:"column:handwriting_strokes;type:jsonb" json:"handwriting_strokes,omitempty"`
	ResponseData        datatypes.JSON `gorm:"column:response_data;type:jsonb" json:"response_data,omitempty"`
	CompletedAt         time.Time      `gorm:"column:completed_at;not null" json:"completed_at"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
}

func (AssessmentGame) TableName() string { return "assessment_game" }
