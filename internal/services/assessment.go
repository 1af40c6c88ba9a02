package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/lexibridge/lexibridge-backend/internal/data/repos"
	types "github.com/lexibridge/lexibridge-backend/internal/domain"
	"github.com/lexibridge/lexibridge-backend/internal/domain/screening"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

var (
	ErrStudentNotFound         = errors.New("student not found")
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrInvalidGameNumber       = errors.New("invalid game number")
	ErrAssessmentNotInProgress = errors.New("assessment is not in progress")
	ErrNoGamesCompleted        = errors.New("no games completed")
)

// Fixed confidence weights attached to the per-game predictions; the scorer
// reports risk only, the weight reflects how much we trust each signal.
const (
	eyeTrackingConfidenceWeight = 0.85
	speechConfidenceWeight      = 0.80
)

type ScreenDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type EyeTrackingPayload struct {
	RawPoints []GazePoint           `json:"rawPoints"`
	Analysis  *ReadingPatternResult `json:"analysis,omitempty"`
}

type GameSubmission struct {
	EyeTrackingData     *EyeTrackingPayload `json:"eyeTrackingData,omitempty"`
	SpeechAudioURL      string              `json:"speechAudioUrl,omitempty"`
	SpeechTranscription string              `json:"speechTranscription,omitempty"`
	HandwritingStrokes  json.RawMessage     `json:"handwritingStrokes,omitempty"`
	ResponseData        json.RawMessage     `json:"responseData,omitempty"`
	ScreenDimensions    *ScreenDimensions   `json:"screenDimensions,omitempty"`
	TextBoundingBox     *TextBoundingBox    `json:"textBoundingBox,omitempty"`
}

type SessionView struct {
	AssessmentID uuid.UUID `json:"assessmentId"`
	StudentID    uuid.UUID `json:"studentId"`
	Language     string    `json:"language"`
	Status       string    `json:"status"`
	StartedAt    time.Time `json:"startedAt"`
	CurrentGame  int       `json:"currentGame"`
	TotalGames   int       `json:"totalGames"`
	Game         *GameInfo `json:"game"`
}

type SubmitResult struct {
	GameID     uuid.UUID `json:"gameId"`
	GameNumber int       `json:"gameNumber"`
	Status     string    `json:"status"`
	IsLastGame bool      `json:"isLastGame"`
	NextGame   *GameInfo `json:"nextGame"`
}

type CompletionResult struct {
	AssessmentID    uuid.UUID `json:"assessmentId"`
	Status          string    `json:"status"`
	CompletedAt     time.Time `json:"completedAt"`
	DurationSeconds int       `json:"durationSeconds"`
	GamesCompleted  int       `json:"gamesCompleted"`
}

type GameBrief struct {
	GameNumber  int       `json:"gameNumber"`
	GameType    string    `json:"gameType"`
	CompletedAt time.Time `json:"completedAt"`
}

type AssessmentSummary struct {
	AssessmentID    uuid.UUID   `json:"assessmentId"`
	Language        string      `json:"language"`
	Status          string      `json:"status"`
	StartedAt       time.Time   `json:"startedAt"`
	CompletedAt     *time.Time  `json:"completedAt,omitempty"`
	DurationSeconds *int        `json:"durationSeconds,omitempty"`
	GamesCompleted  int         `json:"gamesCompleted"`
	Games           []GameBrief `json:"games"`
}

// AssessmentService drives a student through the five screening games:
// session creation and resumption, per-game submission with synchronous ML
// scoring for games 1 and 2, and final aggregation into an overall risk.
type AssessmentService interface {
	StartOrResume(ctx context.Context, studentID uuid.UUID, language string) (*SessionView, error)
	SubmitGame(ctx context.Context, assessmentID uuid.UUID, gameNumber int, data GameSubmission) (*SubmitResult, error)
	Complete(ctx context.Context, assessmentID uuid.UUID) (*CompletionResult, error)
	GetByID(ctx context.Context, assessmentID uuid.UUID) (*types.Assessment, error)
	ListForStudent(ctx context.Context, studentID uuid.UUID) ([]AssessmentSummary, error)
}

type assessmentService struct {
	log         *logger.Logger
	students    repos.StudentRepo
	assessments repos.AssessmentRepo
	games       repos.AssessmentGameRepo
	predictions repos.MlPredictionRepo
	scorer      MLScorerClient
}

func NewAssessmentService(
	log *logger.Logger,
	students repos.StudentRepo,
	assessments repos.AssessmentRepo,
	games repos.AssessmentGameRepo,
	predictions repos.MlPredictionRepo,
	scorer MLScorerClient,
) AssessmentService {
	return &assessmentService{
		log:         log.With("service", "AssessmentService"),
		students:    students,
		assessments: assessments,
		games:       games,
		predictions: predictions,
		scorer:      scorer,
	}
}

func (s *assessmentService) StartOrResume(ctx context.Context, studentID uuid.UUID, language string) (*SessionView, error) {
	student, err := s.students.GetByID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	if language == "" {
		language = DefaultLanguage
	}

	// A finished screening is terminal: starting again never creates a
	// duplicate or regresses state.
	completed, err := s.assessments.GetLatestByStudentAndStatus(ctx, nil, studentID, screening.AssessmentStatusCompleted)
	if err != nil {
		return nil, err
	}
	if completed != nil {
		return completedView(completed), nil
	}

	existing, err := s.assessments.GetLatestByStudentAndStatus(ctx, nil, studentID, screening.AssessmentStatusInProgress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		count, err := s.games.CountByAssessmentID(ctx, nil, existing.ID)
		if err != nil {
			return nil, err
		}
		// All games played but complete was never called; report it as
		// done rather than handing out a sixth game.
		if count >= screening.TotalGames {
			return completedView(existing), nil
		}

		nextGameNumber := count + 1
		info, _ := GameInfoFor(existing.Language, nextGameNumber)
		return &SessionView{
			AssessmentID: existing.ID,
			StudentID:    existing.StudentID,
			Language:     existing.Language,
			Status:       existing.Status,
			StartedAt:    existing.StartedAt,
			CurrentGame:  nextGameNumber,
			TotalGames:   screening.TotalGames,
			Game:         &info,
		}, nil
	}

	assessment, err := s.assessments.Create(ctx, nil, &types.Assessment{
		StudentID: studentID,
		Language:  language,
		Status:    screening.AssessmentStatusInProgress,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("assessment started", "assessment_id", assessment.ID.String(), "student_id", studentID.String(), "language", language)

	info, _ := GameInfoFor(language, 1)
	return &SessionView{
		AssessmentID: assessment.ID,
		StudentID:    assessment.StudentID,
		Language:     assessment.Language,
		Status:       assessment.Status,
		StartedAt:    assessment.StartedAt,
		CurrentGame:  1,
		TotalGames:   screening.TotalGames,
		Game:         &info,
	}, nil
}

func completedView(a *types.Assessment) *SessionView {
	return &SessionView{
		AssessmentID: a.ID,
		StudentID:    a.StudentID,
		Language:     a.Language,
		Status:       screening.AssessmentStatusCompleted,
		StartedAt:    a.StartedAt,
		CurrentGame:  screening.TotalGames,
		TotalGames:   screening.TotalGames,
		Game:         nil,
	}
}

func (s *assessmentService) SubmitGame(ctx context.Context, assessmentID uuid.UUID, gameNumber int, data GameSubmission) (*SubmitResult, error) {
	if gameNumber < 1 || gameNumber > screening.TotalGames {
		return nil, ErrInvalidGameNumber
	}

	assessment, err := s.assessments.GetByID(ctx, nil, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	if assessment.Status != screening.AssessmentStatusInProgress {
		return nil, ErrAssessmentNotInProgress
	}

	if gameNumber == 1 && data.EyeTrackingData != nil && len(data.EyeTrackingData.RawPoints) > 0 {
		s.scoreReadingPatterns(ctx, assessmentID, &data)
	}
	if gameNumber == 2 && data.SpeechAudioURL != "" {
		s.scoreSpeech(ctx, assessmentID, &data)
	}

	gameType, _ := GameType(gameNumber)
	game, err := s.games.Upsert(ctx, nil, &types.AssessmentGame{
		AssessmentID:        assessmentID,
		GameNumber:          gameNumber,
		GameType:            gameType,
		EyeTrackingData:     marshalJSON(data.EyeTrackingData),
		SpeechAudioURL:      data.SpeechAudioURL,
		SpeechTranscription: data.SpeechTranscription,
		HandwritingStrokes:  datatypes.JSON(data.HandwritingStrokes),
		ResponseData:        datatypes.JSON(data.ResponseData),
		CompletedAt:         time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	isLastGame := gameNumber == screening.TotalGames
	var nextGame *GameInfo
	if !isLastGame {
		language := assessment.Language
		if language == "" {
			language = DefaultLanguage
		}
		info, _ := GameInfoFor(language, gameNumber+1)
		// The reading passage only accompanies the session start.
		info.Content = nil
		nextGame = &info
	}

	return &SubmitResult{
		GameID:     game.ID,
		GameNumber: game.GameNumber,
		Status:     "completed",
		IsLastGame: isLastGame,
		NextGame:   nextGame,
	}, nil
}

// scoreReadingPatterns runs the eye-tracking analysis for game 1. The scorer
// never errors; a degraded result is stored like any other so a scorer outage
// cannot block the submission.
func (s *assessmentService) scoreReadingPatterns(ctx context.Context, assessmentID uuid.UUID, data *GameSubmission) {
	screenWidth, screenHeight := 1920, 1080
	if data.ScreenDimensions != nil {
		if data.ScreenDimensions.Width > 0 {
			screenWidth = data.ScreenDimensions.Width
		}
		if data.ScreenDimensions.Height > 0 {
			screenHeight = data.ScreenDimensions.Height
		}
	}

	result := s.scorer.AnalyzeReadingPatterns(ctx, ReadingPatternRequest{
		GazePoints:   data.EyeTrackingData.RawPoints,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		TextBBox:     data.TextBoundingBox,
	})
	if result.Degraded {
		s.log.Warn("eye tracking analysis degraded", "assessment_id", assessmentID.String(), "reason", result.DegradedReason)
	}

	data.EyeTrackingData.Analysis = &result

	if _, err := s.predictions.Create(ctx, nil, &types.MlPrediction{
		AssessmentID:    assessmentID,
		PredictionType:  screening.PredictionTypeEyeTracking,
		RiskScore:       result.DyslexiaRiskScore,
		ConfidenceScore: eyeTrackingConfidenceWeight,
		Details:         marshalJSON(result),
	}); err != nil {
		s.log.Warn("failed to persist eye tracking prediction", "assessment_id", assessmentID.String(), "error", err)
	}
}

// scoreSpeech runs the fluency analysis for game 2 and derives a risk proxy
// as 1 - fluency, so lower fluency implies higher risk.
func (s *assessmentService) scoreSpeech(ctx context.Context, assessmentID uuid.UUID, data *GameSubmission) {
	result := s.scorer.AnalyzeSpeech(ctx, data.SpeechAudioURL)
	if result.Degraded {
		s.log.Warn("speech analysis degraded", "assessment_id", assessmentID.String(), "reason", result.DegradedReason)
	}

	riskScore := clamp01(1 - result.FluencyScore)
	if _, err := s.predictions.Create(ctx, nil, &types.MlPrediction{
		AssessmentID:    assessmentID,
		PredictionType:  screening.PredictionTypeSpeech,
		RiskScore:       riskScore,
		ConfidenceScore: speechConfidenceWeight,
		Details:         marshalJSON(result),
	}); err != nil {
		s.log.Warn("failed to persist speech prediction", "assessment_id", assessmentID.String(), "error", err)
	}

	if result.Transcription != "" {
		data.SpeechTranscription = result.Transcription
	}
}

func (s *assessmentService) Complete(ctx context.Context, assessmentID uuid.UUID) (*CompletionResult, error) {
	assessment, err := s.assessments.GetByID(ctx, nil, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	games, err := s.games.GetByAssessmentID(ctx, nil, assessmentID)
	if err != nil {
		return nil, err
	}
	// Abandoned games are tolerated; a best-effort screening is still
	// produced from whatever was recorded. Zero games is rejected.
	if len(games) == 0 {
		return nil, ErrNoGamesCompleted
	}

	completedAt := time.Now().UTC()
	durationSeconds := int(completedAt.Sub(assessment.StartedAt).Seconds())
	if err := s.assessments.MarkCompleted(ctx, nil, assessmentID, completedAt, durationSeconds); err != nil {
		return nil, err
	}

	// Aggregation failures are logged and swallowed: the completed status
	// above is never rolled back, and the overall prediction is eventually
	// consistent at best.
	if err := s.aggregateScreeningRisk(ctx, assessment, games, completedAt); err != nil {
		s.log.Error("screening aggregation failed", "assessment_id", assessmentID.String(), "error", err)
	}

	return &CompletionResult{
		AssessmentID:    assessmentID,
		Status:          screening.AssessmentStatusCompleted,
		CompletedAt:     completedAt,
		DurationSeconds: durationSeconds,
		GamesCompleted:  len(games),
	}, nil
}

func (s *assessmentService) aggregateScreeningRisk(ctx context.Context, assessment *types.Assessment, games []*types.AssessmentGame, completedAt time.Time) error {
	student, err := s.students.GetByID(ctx, nil, assessment.StudentID)
	if err != nil {
		return err
	}
	if student == nil {
		return ErrStudentNotFound
	}

	gamesData := make(map[string]any, len(games))
	for _, g := range games {
		entry := map[string]any{
			"gameType":           g.GameType,
			"eyeTrackingData":    unmarshalJSON(g.EyeTrackingData),
			"handwritingStrokes": unmarshalJSON(g.HandwritingStrokes),
			"responseData":       unmarshalJSON(g.ResponseData),
		}
		if g.SpeechAudioURL != "" {
			entry["speechFluency"] = map[string]any{
				"url":           g.SpeechAudioURL,
				"transcription": g.SpeechTranscription,
			}
		} else {
			entry["speechFluency"] = nil
		}
		gamesData[gameKey(g.GameNumber)] = entry
	}

	result := s.scorer.PredictScreeningRisk(ctx, ScreeningRiskRequest{
		Age:       student.Age,
		Gender:    "unknown",
		GamesData: gamesData,
	})
	if result.Degraded {
		s.log.Warn("screening aggregation degraded", "assessment_id", assessment.ID.String(), "reason", result.DegradedReason)
	}

	if _, err := s.predictions.Create(ctx, nil, &types.MlPrediction{
		AssessmentID:    assessment.ID,
		StudentID:       &assessment.StudentID,
		PredictionType:  screening.PredictionTypeScreening,
		RiskScore:       result.RiskScore,
		ConfidenceScore: result.Confidence,
		Details:         marshalJSON(result),
	}); err != nil {
		return err
	}

	dyslexiaRisk := int(math.Round(result.RiskScore * 100))
	return s.students.UpdateScreeningResult(ctx, nil, student.ID, dyslexiaRisk, result.Confidence, completedAt)
}

func (s *assessmentService) GetByID(ctx context.Context, assessmentID uuid.UUID) (*types.Assessment, error) {
	assessment, err := s.assessments.GetByIDWithChildren(ctx, nil, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}

func (s *assessmentService) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]AssessmentSummary, error) {
	rows, err := s.assessments.GetByStudentID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}

	summaries := make([]AssessmentSummary, 0, len(rows))
	for _, a := range rows {
		summary := AssessmentSummary{
			AssessmentID:    a.ID,
			Language:        a.Language,
			Status:          a.Status,
			StartedAt:       a.StartedAt,
			CompletedAt:     a.CompletedAt,
			DurationSeconds: a.DurationSeconds,
			GamesCompleted:  len(a.Games),
			Games:           make([]GameBrief, 0, len(a.Games)),
		}
		for _, g := range a.Games {
			summary.Games = append(summary.Games, GameBrief{
				GameNumber:  g.GameNumber,
				GameType:    g.GameType,
				CompletedAt: g.CompletedAt,
			})
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func gameKey(n int) string {
	return fmt.Sprintf("game%d", n)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func marshalJSON(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	if string(b) == "null" {
		return nil
	}
	return datatypes.JSON(b)
}

func unmarshalJSON(raw datatypes.JSON) any {
	if len(raw) == 0 {
		return nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
