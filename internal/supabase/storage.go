package supabase

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// StoredUpload describes one durably persisted upload.
type StoredUpload struct {
	UploadID   uuid.UUID
	StorageKey string
	PublicURL  string
}

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadImage writes the validated file bytes under a generated key and
// returns the upload id, key and derived public URL. A write failure is
// fatal to the upload request; there is no retry here.
func (s *StorageClient) UploadImage(userID uuid.UUID, filename, contentType string, data []byte) (*StoredUpload, error) {
	uploadID := uuid.New()
	storageKey := fmt.Sprintf("users/%s/sermon-notes/%s%s", userID.String(), uploadID.String(), path.Ext(filename))

	upsert := false
	_, err := s.client.UploadFile(s.bucket, storageKey, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &StoredUpload{
		UploadID:   uploadID,
		StorageKey: storageKey,
		PublicURL:  s.GetPublicURL(storageKey),
	}, nil
}

func (s *StorageClient) GetPublicURL(storageKey string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storageKey)
}

// CreateSignedURL returns a temporary access URL so the vision API can read
// a private object without credentials.
func (s *StorageClient) CreateSignedURL(storageKey string, expiresInSeconds int) (string, error) {
	resp, err := s.client.CreateSignedUrl(s.bucket, storageKey, expiresInSeconds)
	if err != nil {
		return "", fmt.Errorf("failed to create signed url: %w", err)
	}
	return resp.SignedURL, nil
}

func (s *StorageClient) DeleteFile(storageKey string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storageKey})
	return err
}

// DeleteUserUploads removes every stored object under the user's sermon
// upload prefix.
func (s *StorageClient) DeleteUserUploads(userID uuid.UUID) error {
	prefix := fmt.Sprintf("users/%s/sermon-notes/", userID.String())

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: 1000,
	})
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if len(files) > 0 {
		filePaths := make([]string, len(files))
		for i, file := range files {
			filePaths[i] = file.Name
		}
		_, err = s.client.RemoveFile(s.bucket, filePaths)
		if err != nil {
			return fmt.Errorf("failed to delete files: %w", err)
		}
	}

	return nil
}
