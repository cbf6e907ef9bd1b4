package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"kosmos-backend/internal/services"
)

func TestSelectFirstValid_EmptyBatch(t *testing.T) {
	validator := services.NewUploadValidator(10 << 20)

	_, _, err := validator.SelectFirstValid(nil)
	assert.ErrorIs(t, err, services.ErrNoFiles)
}

func TestSelectFirstValid_SingleValidFile(t *testing.T) {
	validator := services.NewUploadValidator(10 << 20)

	selected, rejections, err := validator.SelectFirstValid([]services.CandidateFile{
		{Filename: "page1.jpg", Size: 1024, MimeType: "image/jpeg"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, selected)
	assert.Empty(t, rejections)
}

func TestSelectFirstValid_FirstValidWinsPastFailures(t *testing.T) {
	validator := services.NewUploadValidator(10 << 20)

	// The first passing file is selected even when earlier files fail.
	selected, rejections, err := validator.SelectFirstValid([]services.CandidateFile{
		{Filename: "notes.pdf", Size: 1024, MimeType: "application/pdf"},
		{Filename: "page1.png", Size: 2048, MimeType: "image/png"},
		{Filename: "page2.bmp", Size: 2048, MimeType: "image/bmp"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, selected)
	assert.Len(t, rejections, 2)
	assert.Equal(t, "notes.pdf", rejections[0].Filename)
	assert.Equal(t, "page2.bmp", rejections[1].Filename)
}

func TestSelectFirstValid_OversizedFile(t *testing.T) {
	validator := services.NewUploadValidator(1024)

	_, rejections, err := validator.SelectFirstValid([]services.CandidateFile{
		{Filename: "huge.jpg", Size: 2048, MimeType: "image/jpeg"},
	})
	assert.Error(t, err)
	assert.Len(t, rejections, 1)
	assert.Contains(t, rejections[0].Reason, "exceeds")
}

func TestSelectFirstValid_ExtensionMismatch(t *testing.T) {
	validator := services.NewUploadValidator(10 << 20)

	// A valid MIME type does not rescue a disallowed extension.
	_, rejections, err := validator.SelectFirstValid([]services.CandidateFile{
		{Filename: "scan.tiff", Size: 1024, MimeType: "image/jpeg"},
	})
	assert.Error(t, err)
	assert.Len(t, rejections, 1)
	assert.Contains(t, rejections[0].Reason, "extension")
}

func TestSelectFirstValid_AllInvalidAggregatesMessages(t *testing.T) {
	validator := services.NewUploadValidator(10 << 20)

	_, rejections, err := validator.SelectFirstValid([]services.CandidateFile{
		{Filename: "a.pdf", Size: 1024, MimeType: "application/pdf"},
		{Filename: "b.svg", Size: 1024, MimeType: "image/svg+xml"},
	})
	assert.Error(t, err)
	assert.Len(t, rejections, 2)
	assert.Contains(t, err.Error(), "a.pdf")
	assert.Contains(t, err.Error(), "b.svg")
}

func TestSelectFirstValid_MimeTypeCaseInsensitive(t *testing.T) {
	validator := services.NewUploadValidator(10 << 20)

	selected, _, err := validator.SelectFirstValid([]services.CandidateFile{
		{Filename: "PAGE1.JPG", Size: 1024, MimeType: "IMAGE/JPEG"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, selected)
}
