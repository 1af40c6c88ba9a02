package domain

import "github.com/lexibridge/lexibridge-backend/internal/domain/screening"

type Student = screening.Student
type Assessment = screening.Assessment
type AssessmentGame = screening.AssessmentGame
type MlPrediction = screening.MlPrediction
