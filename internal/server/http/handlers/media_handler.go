package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vpetrenko/shopadmin/internal/media"
	"github.com/vpetrenko/shopadmin/internal/server/http/dto"
)

// Media form actions.
const (
	actionUpload   = "upload"
	actionValidate = "validate"
	actionDelete   = "delete"
)

// MediaHandler dispatches catalog image operations to the image collaborator.
type MediaHandler struct {
	images ImageStore
}

// NewMediaHandler constructs MediaHandler.
func NewMediaHandler(images ImageStore) *MediaHandler {
	return &MediaHandler{images: images}
}

// Handle processes POST /api/admin/media, dispatching on the action field.
func (h *MediaHandler) Handle(c *gin.Context) {
	switch c.PostForm("action") {
	case actionUpload:
		h.upload(c)
	case actionValidate:
		h.validate(c)
	case actionDelete:
		h.delete(c)
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid or missing action"})
	}
}

func (h *MediaHandler) upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image file is required"})
		return
	}

	result, err := h.images.Store(file, c.PostForm("type"), c.PostForm("custom_name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, dto.MediaResponse{Message: "image rejected", Errors: result.Errors})
		return
	}

	c.JSON(http.StatusOK, dto.MediaResponse{
		Success: true,
		Message: "image uploaded",
		Name:    result.Name,
		Path:    result.Path,
		Width:   result.Width,
		Height:  result.Height,
	})
}

func (h *MediaHandler) validate(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image file is required"})
		return
	}

	result, err := h.images.Check(file, c.PostForm("type"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MediaResponse{
		Success: result.Valid,
		Message: "validation completed",
		Width:   result.Width,
		Height:  result.Height,
		Errors:  result.Errors,
	})
}

func (h *MediaHandler) delete(c *gin.Context) {
	filename := c.PostForm("filename")
	category := c.PostForm("type")
	if filename == "" || category == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "filename and type are required"})
		return
	}

	if err := h.images.Delete(category, filename); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "image deleted"})
}

func (h *MediaHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, media.ErrFileNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, media.ErrUnknownCategory), errors.Is(err, media.ErrInvalidFilename):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
