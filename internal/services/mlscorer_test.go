package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

func newTestScorer(t *testing.T, handler http.Handler) MLScorerClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("ML_SERVICE_URL", srv.URL)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewMLScorerClient(log)
}

func TestCheckHealth(t *testing.T) {
	scorer := newTestScorer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}))
	if !scorer.CheckHealth(context.Background()) {
		t.Fatalf("expected healthy")
	}
}

func TestCheckHealthUnhealthyStatus(t *testing.T) {
	scorer := newTestScorer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "degraded"})
	}))
	if scorer.CheckHealth(context.Background()) {
		t.Fatalf("expected unhealthy for non-healthy status body")
	}
}

func TestAnalyzeReadingPatterns(t *testing.T) {
	scorer := newTestScorer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/reading-patterns" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ReadingPatternRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ScreenWidth != 1280 || len(req.GazePoints) != 2 {
			t.Errorf("unexpected request payload: %+v", req)
		}
		json.NewEncoder(w).Encode(ReadingPatternResult{
			FixationCount:     12,
			RegressionCount:   3,
			DyslexiaRiskScore: 0.42,
			RiskFlags:         []string{"high_regression_rate"},
		})
	}))

	result := scorer.AnalyzeReadingPatterns(context.Background(), ReadingPatternRequest{
		GazePoints:   []GazePoint{{X: 1, Y: 2, Timestamp: 0}, {X: 3, Y: 4, Timestamp: 16}},
		ScreenWidth:  1280,
		ScreenHeight: 720,
	})
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %s", result.DegradedReason)
	}
	if result.DyslexiaRiskScore != 0.42 || result.FixationCount != 12 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAnalyzeReadingPatternsDegradesOnServerError(t *testing.T) {
	scorer := newTestScorer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))

	result := scorer.AnalyzeReadingPatterns(context.Background(), ReadingPatternRequest{})
	if !result.Degraded {
		t.Fatalf("expected degraded result")
	}
	if result.DyslexiaRiskScore != 0 || result.FixationCount != 0 {
		t.Fatalf("degraded result should zero the metrics: %+v", result)
	}
	if len(result.RiskFlags) != 1 || result.RiskFlags[0] != "analysis_failed" {
		t.Fatalf("degraded result should flag analysis_failed: %v", result.RiskFlags)
	}
}

func TestAnalyzeSpeechDegradesToNeutralFluency(t *testing.T) {
	t.Setenv("ML_SERVICE_URL", "http://127.0.0.1:1")
	t.Setenv("ML_SERVICE_TIMEOUT_SECONDS", "1")

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	scorer := NewMLScorerClient(log)

	result := scorer.AnalyzeSpeech(context.Background(), "https://cdn.example.com/audio/a.webm")
	if !result.Degraded {
		t.Fatalf("expected degraded result against unreachable service")
	}
	if result.FluencyScore != 0.5 {
		t.Fatalf("degraded fluency should be neutral 0.5, got %v", result.FluencyScore)
	}
	if result.Transcription != "Analysis failed" {
		t.Fatalf("unexpected degraded transcription %q", result.Transcription)
	}
	if result.Confidence != 0 {
		t.Fatalf("degraded confidence should be 0, got %v", result.Confidence)
	}
}

func TestAnalyzeSpeech(t *testing.T) {
	scorer := newTestScorer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/speech-fluency" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["audio_url"] == "" {
			t.Errorf("missing audio_url in request")
		}
		json.NewEncoder(w).Encode(SpeechAnalysisResult{
			FluencyScore:   0.8,
			WordsPerMinute: 92,
			Transcription:  "the quick brown fox",
			Confidence:     0.91,
		})
	}))

	result := scorer.AnalyzeSpeech(context.Background(), "https://cdn.example.com/audio/a.webm")
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %s", result.DegradedReason)
	}
	if result.FluencyScore != 0.8 || result.Transcription != "the quick brown fox" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestPredictScreeningRiskDegradedDefaults(t *testing.T) {
	scorer := newTestScorer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	result := scorer.PredictScreeningRisk(context.Background(), ScreeningRiskRequest{Age: 8, Gender: "unknown"})
	if !result.Degraded {
		t.Fatalf("expected degraded result")
	}
	if result.RiskScore != 0.1 || result.RiskLevel != "Low" || result.Confidence != 0.5 {
		t.Fatalf("unexpected degraded defaults: %+v", result)
	}
	if len(result.FlaggedAreas) < 1 || result.FlaggedAreas[0] != "Calculation Failed" {
		t.Fatalf("degraded flagged areas should lead with Calculation Failed: %v", result.FlaggedAreas)
	}
}

func TestPredictScreeningRisk(t *testing.T) {
	scorer := newTestScorer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict/screening" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req ScreeningRiskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Age != 9 || len(req.GamesData) != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
		json.NewEncoder(w).Encode(ScreeningRiskResult{
			RiskScore:    0.67,
			RiskLevel:    "High",
			FlaggedAreas: []string{"reading", "speech"},
			Confidence:   0.88,
		})
	}))

	result := scorer.PredictScreeningRisk(context.Background(), ScreeningRiskRequest{
		Age:    9,
		Gender: "unknown",
		GamesData: map[string]any{
			"game1": map[string]any{"gameType": "eye_tracking_reading"},
			"game2": map[string]any{"gameType": "speech_fluency"},
		},
	})
	if result.Degraded {
		t.Fatalf("unexpected degraded result: %s", result.DegradedReason)
	}
	if result.RiskScore != 0.67 || result.RiskLevel != "High" {
		t.Fatalf("unexpected result: %+v", result)
	}
}
