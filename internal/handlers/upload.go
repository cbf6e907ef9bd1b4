package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"kosmos-backend/internal/models"
	"kosmos-backend/internal/services"
	"kosmos-backend/internal/supabase"
)

type UploadHandler struct {
	validator     *services.UploadValidator
	dbClient      *supabase.DatabaseClient
	storageClient *supabase.StorageClient
}

func NewUploadHandler(validator *services.UploadValidator, dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient) *UploadHandler {
	return &UploadHandler{
		validator:     validator,
		dbClient:      dbClient,
		storageClient: storageClient,
	}
}

// Upload godoc
// @Summary     Upload a sermon note image
// @Description Validates the uploaded batch per file (size, MIME type, extension) and stores the first valid file. The returned upload_id is claimed later by sermon note creation.
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       files formData file true "Image files (first valid one is stored)"
// @Success     201 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.dbClient == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return
	}

	form := c.Request.MultipartForm
	if form == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to parse multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}

	candidates := make([]services.CandidateFile, len(files))
	for i, file := range files {
		candidates[i] = services.CandidateFile{
			Filename: file.Filename,
			Size:     file.Size,
			MimeType: file.Header.Get("Content-Type"),
		}
	}

	selected, rejections, err := h.validator.SelectFirstValid(candidates)
	if err != nil {
		if errors.Is(err, services.ErrNoFiles) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no files provided"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "upload validation failed",
			Message: err.Error(),
		})
		return
	}

	file := files[selected]
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read file data",
			Message: err.Error(),
		})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	stored, err := h.storageClient.UploadImage(userID, file.Filename, mimeType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store file",
			Message: err.Error(),
		})
		return
	}

	// The image row starts unattached; sermon note creation claims it by
	// filling in the entity id.
	image := &models.Image{
		ID:         stored.UploadID,
		UserID:     userID,
		EntityType: models.ImageEntitySermonNote,
		EntityID:   uuid.Nil,
		StorageKey: stored.StorageKey,
		Filename:   file.Filename,
		MimeType:   mimeType,
		FileSize:   file.Size,
	}
	if err := h.dbClient.CreateImage(image); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to record upload",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{
		UploadID: stored.UploadID.String(),
		FileName: file.Filename,
		ImageURL: stored.PublicURL,
		Rejected: rejections,
	})
}
