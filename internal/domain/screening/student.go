package screening

import (
	"time"

	"github.com/google/uuid"
)

// Student rows are owned by the roster service; this backend only reads the
// profile and writes back the cached screening-risk fields after completion.
type Student struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string     `gorm:"column:name;not null" json:"name"`
	Age                 int        `gorm:"column:age;not null" json:"age"`
	Grade               string     `gorm:"column:grade" json:"grade,omitempty"`
	Language            string     `gorm:"column:language;not null;default:'en'" json:"language"`
	ScreeningStatus     string     `gorm:"column:screening_status;not null;default:'pending';index" json:"screening_status"`
	DyslexiaRisk        *int       `gorm:"column:dyslexia_risk" json:"dyslexia_risk,omitempty"`
	ScreeningConfidence *float64   `gorm:"column:screening_confidence" json:"screening_confidence,omitempty"`
	AssessedAt          *time.Time `gorm:"column:assessed_at" json:"assessed_at,omitempty"`
	CreatedAt           time.Time  `gorm:"not null;index" json:"created_at"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updated_at"`
}

func (Student) TableName() string { return "student" }
