package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lexibridge/lexibridge-backend/internal/http/response"
	"github.com/lexibridge/lexibridge-backend/internal/services"
)

type AssessmentHandler struct {
	assessments services.AssessmentService
}

func NewAssessmentHandler(assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

type startAssessmentRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Language  string `json:"language"`
}

func (h *AssessmentHandler) Start(c *gin.Context) {
	var req startAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_student_id", err)
		return
	}

	view, err := h.assessments.StartOrResume(c.Request.Context(), studentID, req.Language)
	if err != nil {
		respondServiceError(c, "start_assessment_failed", err)
		return
	}
	response.RespondCreated(c, view)
}

func (h *AssessmentHandler) SubmitGame(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("assessmentId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assessment_id", err)
		return
	}
	gameNumber, err := strconv.Atoi(c.Param("gameNumber"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_game_number", services.ErrInvalidGameNumber)
		return
	}
	var data services.GameSubmission
	if err := c.ShouldBindJSON(&data); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	result, err := h.assessments.SubmitGame(c.Request.Context(), assessmentID, gameNumber, data)
	if err != nil {
		respondServiceError(c, "submit_game_failed", err)
		return
	}
	response.RespondOK(c, result)
}

func (h *AssessmentHandler) Complete(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("assessmentId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assessment_id", err)
		return
	}

	result, err := h.assessments.Complete(c.Request.Context(), assessmentID)
	if err != nil {
		respondServiceError(c, "complete_assessment_failed", err)
		return
	}
	response.RespondOK(c, result)
}

func (h *AssessmentHandler) GetByID(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("assessmentId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_assessment_id", err)
		return
	}

	assessment, err := h.assessments.GetByID(c.Request.Context(), assessmentID)
	if err != nil {
		respondServiceError(c, "get_assessment_failed", err)
		return
	}
	response.RespondOK(c, assessment)
}

func (h *AssessmentHandler) ListForStudent(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("studentId"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_student_id", err)
		return
	}

	summaries, err := h.assessments.ListForStudent(c.Request.Context(), studentID)
	if err != nil {
		respondServiceError(c, "list_assessments_failed", err)
		return
	}
	response.RespondOK(c, summaries)
}

// Client errors map to 4xx; scorer and storage degradation never reach here
// because the services swallow it by contract.
func respondServiceError(c *gin.Context, code string, err error) {
	switch {
	case errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrAssessmentNotFound):
		response.RespondError(c, http.StatusNotFound, code, err)
	case errors.Is(err, services.ErrInvalidGameNumber),
		errors.Is(err, services.ErrAssessmentNotInProgress),
		errors.Is(err, services.ErrNoGamesCompleted):
		response.RespondError(c, http.StatusBadRequest, code, err)
	default:
		response.RespondError(c, http.StatusInternalServerError, code, err)
	}
}
