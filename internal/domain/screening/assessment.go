package screening

import (
	"time"

	"github.com/google/uuid"
)

const (
	AssessmentStatusInProgress = "in_progress"
	AssessmentStatusCompleted  = "completed"
)

// TotalGames is the number of games in one screening attempt.
const TotalGames = 5

// Assessment is one screening attempt for one student. At most one
// in_progress row may exist per student; a second start resolves to a resume.
type Assessment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	Language        string     `gorm:"column:language;not null;default:'en'" json:"language"`
	Status          string     `gorm:"column:status;not null;index" json:"status"`
	StartedAt       time.Time  `gorm:"column:started_at;not null" json:"started_at"`
	CompletedAt     *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	DurationSeconds *int       `gorm:"column:duration_seconds" json:"duration_seconds,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`

	Games       []AssessmentGame `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"games,omitempty"`
	Predictions []MlPrediction   `gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE" json:"predictions,omitempty"`
}

func (Assessment) TableName() string { return "assessment" }
