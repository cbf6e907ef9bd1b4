package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"kosmos-backend/internal/models"
)

// ErrNoFiles is returned for an empty upload batch.
var ErrNoFiles = errors.New("no files provided")

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// CandidateFile carries the declared properties of one uploaded file.
type CandidateFile struct {
	Filename string
	Size     int64
	MimeType string
}

// UploadValidator performs pure per-file validation of an upload batch. It
// has no side effects.
type UploadValidator struct {
	maxBytes int64
}

func NewUploadValidator(maxBytes int64) *UploadValidator {
	return &UploadValidator{maxBytes: maxBytes}
}

// SelectFirstValid checks every file in the batch against the size ceiling
// and the MIME and extension allow-lists. The first file that passes all
// three checks is selected even when other files fail; every failing file
// contributes its own rejection. When no file passes, the returned error
// concatenates all per-file messages. An empty batch fails with ErrNoFiles.
func (v *UploadValidator) SelectFirstValid(files []CandidateFile) (int, []models.UploadRejection, error) {
	if len(files) == 0 {
		return -1, nil, ErrNoFiles
	}

	selected := -1
	var rejections []models.UploadRejection
	for i, file := range files {
		if reason := v.check(file); reason != "" {
			rejections = append(rejections, models.UploadRejection{
				Filename: file.Filename,
				Reason:   reason,
			})
			continue
		}
		if selected == -1 {
			selected = i
		}
	}

	if selected == -1 {
		messages := make([]string, len(rejections))
		for i, r := range rejections {
			messages[i] = fmt.Sprintf("%s: %s", r.Filename, r.Reason)
		}
		return -1, rejections, fmt.Errorf("no valid files in batch: %s", strings.Join(messages, "; "))
	}

	return selected, rejections, nil
}

func (v *UploadValidator) check(file CandidateFile) string {
	if file.Size > v.maxBytes {
		return fmt.Sprintf("file size %d exceeds the %d byte limit", file.Size, v.maxBytes)
	}
	if !allowedMimeTypes[strings.ToLower(file.MimeType)] {
		return fmt.Sprintf("mime type %q is not allowed (jpeg, png, webp, gif)", file.MimeType)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return fmt.Sprintf("extension %q is not allowed (.jpg, .jpeg, .png, .webp, .gif)", ext)
	}
	return ""
}
