package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/lexibridge/lexibridge-backend/internal/domain"
)

func SeedStudent(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, age int) *types.Student {
	tb.Helper()
	s := &types.Student{
		ID:              uuid.New(),
		Name:            name,
		Age:             age,
		Grade:           "2",
		Language:        "en",
		ScreeningStatus: "pending",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

func SeedAssessment(tb testing.TB, ctx context.Context, tx *gorm.DB, studentID uuid.UUID, status string) *types.Assessment {
	tb.Helper()
	a := &types.Assessment{
		ID:        uuid.New(),
		StudentID: studentID,
		Language:  "en",
		Status:    status,
		StartedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assessment: %v", err)
	}
	return a
}

func SeedAssessmentGame(tb testing.TB, ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, gameNumber int) *types.AssessmentGame {
	tb.Helper()
	g := &types.AssessmentGame{
		ID:           uuid.New(),
		AssessmentID: assessmentID,
		GameNumber:   gameNumber,
		GameType:     "pattern_recognition",
		ResponseData: datatypes.JSON([]byte(`{"answers":[]}`)),
		CompletedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed assessment game: %v", err)
	}
	return g
}

func SeedPrediction(tb testing.TB, ctx context.Context, tx *gorm.DB, assessmentID uuid.UUID, predictionType string, riskScore float64) *types.MlPrediction {
	tb.Helper()
	p := &types.MlPrediction{
		ID:              uuid.New(),
		AssessmentID:    assessmentID,
		PredictionType:  predictionType,
		RiskScore:       riskScore,
		ConfidenceScore: 0.8,
		Details:         datatypes.JSON([]byte(`{}`)),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed prediction: %v", err)
	}
	return p
}
