package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lexibridge/lexibridge-backend/internal/http/response"
	"github.com/lexibridge/lexibridge-backend/internal/platform/logger"
	"github.com/lexibridge/lexibridge-backend/internal/services"
)

type UploadHandler struct {
	log    *logger.Logger
	bucket services.BucketService
}

func NewUploadHandler(log *logger.Logger, bucket services.BucketService) *UploadHandler {
	return &UploadHandler{log: log.With("handler", "UploadHandler"), bucket: bucket}
}

type uploadAudioResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
	Size     int64  `json:"size"`
}

// UploadAudio stores a speech recording and returns its durable URL. A
// storage outage degrades to an empty URL rather than failing the request,
// so a game submission referencing the audio can still go through.
func (h *UploadHandler) UploadAudio(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "no_file_uploaded", err)
		return
	}

	assessmentID := uuid.Nil
	if raw := c.PostForm("assessmentId"); raw != "" {
		if parsed, err := uuid.Parse(raw); err == nil {
			assessmentID = parsed
		}
	}

	url := ""
	if h.bucket != nil {
		file, err := fileHeader.Open()
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "unreadable_file", err)
			return
		}
		defer file.Close()

		uploaded, err := h.bucket.UploadAudio(c.Request.Context(), assessmentID, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
		if err != nil {
			h.log.Warn("audio upload failed", "assessment_id", assessmentID.String(), "error", err)
		} else {
			url = uploaded
		}
	}

	response.RespondCreated(c, uploadAudioResponse{
		URL:      url,
		Filename: fileHeader.Filename,
		Mimetype: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
	})
}
