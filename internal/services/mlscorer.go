package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lexibridge/lexibridge-backend/internal/platform/envutil"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
)

// MLScorerClient talks to the external screening ML service. Every call is a
// single outbound request with a bounded timeout and no retry. Failures never
// surface as errors: each method returns a usable degraded-default result
// with Degraded set, so callers can always proceed.
type MLScorerClient interface {
	CheckHealth(ctx context.Context) bool
	AnalyzeReadingPatterns(ctx context.Context, req ReadingPatternRequest) ReadingPatternResult
	AnalyzeSpeech(ctx context.Context, audioURL string) SpeechAnalysisResult
	PredictScreeningRisk(ctx context.Context, req ScreeningRiskRequest) ScreeningRiskResult
}

type GazePoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Timestamp float64 `json:"timestamp"`
}

type TextBoundingBox struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ReadingPatternRequest struct {
	GazePoints   []GazePoint      `json:"gaze_points"`
	ScreenWidth  int              `json:"screen_width"`
	ScreenHeight int              `json:"screen_height"`
	TextBBox     *TextBoundingBox `json:"text_bbox,omitempty"`
}

type ReadingPatternResult struct {
	FixationCount           int      `json:"fixation_count"`
	SaccadeCount            int      `json:"saccade_count"`
	RegressionCount         int      `json:"regression_count"`
	AverageFixationDuration float64  `json:"average_fixation_duration"`
	ReadingSpeedScore       float64  `json:"reading_speed_score"`
	RiskFlags               []string `json:"risk_flags"`
	DyslexiaRiskScore       float64  `json:"dyslexia_risk_score"`

	Degraded       bool   `json:"-"`
	DegradedReason string `json:"-"`
}

type SpeechAnalysisResult struct {
	FluencyScore   float64 `json:"fluency_score"`
	WordsPerMinute float64 `json:"words_per_minute"`
	PauseCount     int     `json:"pause_count"`
	Transcription  string  `json:"transcription"`
	Confidence     float64 `json:"confidence"`

	Degraded       bool   `json:"-"`
	DegradedReason string `json:"-"`
}

type ScreeningRiskRequest struct {
	Age       int            `json:"age"`
	Gender    string         `json:"gender"`
	GamesData map[string]any `json:"games_data"`
}

type ScreeningRiskResult struct {
	RiskScore    float64  `json:"risk_score"`
	RiskLevel    string   `json:"risk_level"`
	FlaggedAreas []string `json:"flagged_areas"`
	Confidence   float64  `json:"confidence"`

	Degraded       bool   `json:"-"`
	DegradedReason string `json:"-"`
}

type mlScorerClient struct {
	log        *logger.Logger
	baseURL    string
	httpClient *http.Client
}

func NewMLScorerClient(log *logger.Logger) MLScorerClient {
	baseURL := envutil.Str("ML_SERVICE_URL", "http://localhost:8000")
	timeoutSec := envutil.Int("ML_SERVICE_TIMEOUT_SECONDS", 30)
	return &mlScorerClient{
		log:        log.With("service", "MLScorerClient"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

func (c *mlScorerClient) CheckHealth(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("ml service health check failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false
	}
	return resp.StatusCode == http.StatusOK && body.Status == "healthy"
}

func (c *mlScorerClient) AnalyzeReadingPatterns(ctx context.Context, req ReadingPatternRequest) ReadingPatternResult {
	var out ReadingPatternResult
	if err := c.post(ctx, "/predict/reading-patterns", req, &out); err != nil {
		c.log.Warn("reading pattern analysis failed", "error", err)
		return ReadingPatternResult{
			RiskFlags:      []string{"analysis_failed"},
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}
	return out
}

func (c *mlScorerClient) AnalyzeSpeech(ctx context.Context, audioURL string) SpeechAnalysisResult {
	var out SpeechAnalysisResult
	payload := map[string]string{"audio_url": audioURL}
	if err := c.post(ctx, "/predict/speech-fluency", payload, &out); err != nil {
		c.log.Warn("speech analysis failed", "error", err)
		// Neutral fluency rather than zero so the derived risk proxy
		// (1 - fluency) does not report maximum risk on an outage.
		return SpeechAnalysisResult{
			FluencyScore:   0.5,
			Transcription:  "Analysis failed",
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}
	return out
}

func (c *mlScorerClient) PredictScreeningRisk(ctx context.Context, req ScreeningRiskRequest) ScreeningRiskResult {
	var out ScreeningRiskResult
	if err := c.post(ctx, "/predict/screening", req, &out); err != nil {
		c.log.Warn("screening prediction failed", "error", err)
		return ScreeningRiskResult{
			RiskScore:      0.1,
			RiskLevel:      "Low",
			FlaggedAreas:   []string{"Calculation Failed", "Error: " + err.Error()},
			Confidence:     0.5,
			Degraded:       true,
			DegradedReason: err.Error(),
		}
	}
	return out
}

func (c *mlScorerClient) post(ctx context.Context, path string, payload any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ml service http %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
