package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/lexibridge/lexibridge-backend/internal/domain"
	"github.com/lexibridge/lexibridge-backend/internal/services"
)

type stubAssessmentService struct {
	startView    *services.SessionView
	startErr     error
	submitResult *services.SubmitResult
	submitErr    error
	completeErr  error
}

func (s *stubAssessmentService) StartOrResume(ctx context.Context, studentID uuid.UUID, language string) (*services.SessionView, error) {
	return s.startView, s.startErr
}

func (s *stubAssessmentService) SubmitGame(ctx context.Context, assessmentID uuid.UUID, gameNumber int, data services.GameSubmission) (*services.SubmitResult, error) {
	return s.submitResult, s.submitErr
}

func (s *stubAssessmentService) Complete(ctx context.Context, assessmentID uuid.UUID) (*services.CompletionResult, error) {
	if s.completeErr != nil {
		return nil, s.completeErr
	}
	return &services.CompletionResult{AssessmentID: assessmentID, Status: "completed"}, nil
}

func (s *stubAssessmentService) GetByID(ctx context.Context, assessmentID uuid.UUID) (*types.Assessment, error) {
	return nil, services.ErrAssessmentNotFound
}

func (s *stubAssessmentService) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]services.AssessmentSummary, error) {
	return []services.AssessmentSummary{}, nil
}

func newTestRouter(svc services.AssessmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAssessmentHandler(svc)
	r := gin.New()
	r.POST("/api/assessments/start", h.Start)
	r.POST("/api/assessments/:assessmentId/games/:gameNumber", h.SubmitGame)
	r.POST("/api/assessments/:assessmentId/complete", h.Complete)
	r.GET("/api/assessments/:assessmentId", h.GetByID)
	return r
}

func TestStartRejectsMissingStudentID(t *testing.T) {
	r := newTestRouter(&stubAssessmentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments/start", bytes.NewBufferString(`{"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStartMapsUnknownStudentTo404(t *testing.T) {
	r := newTestRouter(&stubAssessmentService{startErr: services.ErrStudentNotFound})

	body := `{"studentId":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/start", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStartReturnsSessionView(t *testing.T) {
	view := &services.SessionView{
		AssessmentID: uuid.New(),
		StudentID:    uuid.New(),
		Language:     "en",
		Status:       "in_progress",
		CurrentGame:  1,
		TotalGames:   5,
	}
	r := newTestRouter(&stubAssessmentService{startView: view})

	body := `{"studentId":"` + view.StudentID.String() + `","language":"en"}`
	req := httptest.NewRequest(http.MethodPost, "/api/assessments/start", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var got services.SessionView
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.AssessmentID != view.AssessmentID || got.CurrentGame != 1 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestSubmitGameRejectsBadIdentifiers(t *testing.T) {
	r := newTestRouter(&stubAssessmentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments/not-a-uuid/games/1", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad assessment id: expected 400, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/assessments/"+uuid.NewString()+"/games/abc", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad game number: expected 400, got %d", w.Code)
	}
}

func TestSubmitGameMapsStateErrorsTo400(t *testing.T) {
	r := newTestRouter(&stubAssessmentService{submitErr: services.ErrAssessmentNotInProgress})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments/"+uuid.NewString()+"/games/2", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompleteMapsNoGamesTo400(t *testing.T) {
	r := newTestRouter(&stubAssessmentService{completeErr: services.ErrNoGamesCompleted})

	req := httptest.NewRequest(http.MethodPost, "/api/assessments/"+uuid.NewString()+"/complete", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetByIDMapsNotFoundTo404(t *testing.T) {
	r := newTestRouter(&stubAssessmentService{})

	req := httptest.NewRequest(http.MethodGet, "/api/assessments/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
