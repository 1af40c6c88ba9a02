package screening_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	repo "github.com/lexibridge/lexibridge-backend/internal/data/repos/screening"
	"github.com/lexibridge/lexibridge-backend/internal/data/repos/testutil"
	types "github.com/lexibridge/lexibridge-backend/internal/domain"
	"github.com/lexibridge/lexibridge-backend/internal/domain/screening"
)

func TestMlPredictionRepoCreate(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	predictions := repo.NewMlPredictionRepo(testutil.DB(t), testutil.Logger(t))

	student := testutil.SeedStudent(t, ctx, tx, "Zoya", 8)
	assessment := testutil.SeedAssessment(t, ctx, tx, student.ID, screening.AssessmentStatusInProgress)

	created, err := predictions.Create(ctx, tx, &types.MlPrediction{
		AssessmentID:    assessment.ID,
		StudentID:       &student.ID,
		PredictionType:  screening.PredictionTypeScreening,
		RiskScore:       0.55,
		ConfidenceScore: 0.8,
		Details:         datatypes.JSON([]byte(`{"risk_level":"Medium"}`)),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("Create should assign an id")
	}

	rows, err := predictions.GetByAssessmentID(ctx, tx, assessment.ID)
	if err != nil {
		t.Fatalf("GetByAssessmentID: %v", err)
	}
	if len(rows) != 1 || rows[0].RiskScore != 0.55 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].StudentID == nil || *rows[0].StudentID != student.ID {
		t.Fatalf("student reference should round-trip")
	}
}

func TestMlPredictionRepoGetByAssessmentAndType(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	predictions := repo.NewMlPredictionRepo(testutil.DB(t), testutil.Logger(t))

	student := testutil.SeedStudent(t, ctx, tx, "Veer", 10)
	assessment := testutil.SeedAssessment(t, ctx, tx, student.ID, screening.AssessmentStatusInProgress)
	testutil.SeedPrediction(t, ctx, tx, assessment.ID, screening.PredictionTypeEyeTracking, 0.3)
	testutil.SeedPrediction(t, ctx, tx, assessment.ID, screening.PredictionTypeSpeech, 0.2)

	rows, err := predictions.GetByAssessmentAndType(ctx, tx, assessment.ID, screening.PredictionTypeSpeech)
	if err != nil {
		t.Fatalf("GetByAssessmentAndType: %v", err)
	}
	if len(rows) != 1 || rows[0].RiskScore != 0.2 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
