package api

import (
	"errors"
	"fitmanager/routine-service/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// MediaHandler hands out presigned upload URLs for exercise images and videos.
type MediaHandler struct {
	mediaService service.MediaService
	log          logrus.FieldLogger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService service.MediaService, log logrus.FieldLogger) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, log: log}
}

// RequestUploadURL godoc
// @Summary Request a presigned upload URL for exercise media
// @Description The client PUTs the file to uploadUrl with the same Content-Type, then
// @Description stores publicUrl in the exercise's imageUrl or videoUrl.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.MediaUploadInput true "kind and contentType"
// @Success 200 {object} domain.MediaUpload
// @Failure 400 {object} gin.H "Invalid kind or content type"
// @Failure 500 {object} gin.H "Failed to generate upload URL"
// @Router /exercises/media/upload-url [post]
func (h *MediaHandler) RequestUploadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req service.MediaUploadInput
	if !bindJSON(c, &req) {
		return
	}

	upload, err := h.mediaService.RequestUploadURL(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUploadURLError) {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
			return
		}
		respondWithServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}
