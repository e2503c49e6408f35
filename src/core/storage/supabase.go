package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
)

// Supabase stores blobs in a Supabase storage bucket behind the same
// FileStore contract as Disk.
type Supabase struct {
	client *storage_go.Client
	bucket string
}

// NewSupabase initializes the storage client and bucket name from the
// environment.
func NewSupabase() (*Supabase, error) {
	projectReferenceID := os.Getenv("SUPABASE_URL")
	projectSecretAPIKey := os.Getenv("SUPABASE_KEY")
	bucketName := os.Getenv("BUCKET_NAME")

	if projectReferenceID == "" || projectSecretAPIKey == "" || bucketName == "" {
		return nil, errors.New("missing SUPABASE_URL, SUPABASE_KEY, or BUCKET_NAME in environment variables")
	}

	client := storage_go.NewClient(projectReferenceID+"/storage/v1", projectSecretAPIKey, nil)
	return &Supabase{client: client, bucket: bucketName}, nil
}

func (s *Supabase) Save(dir, ext string, r io.Reader) (string, error) {
	fileBytes, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read file contents: %w", err)
	}

	contentType := http.DetectContentType(fileBytes)
	key := path.Join(dir, uuid.New().String()+ext)

	_, err = s.client.UploadFile(s.bucket, key, bytes.NewReader(fileBytes), storage_go.FileOptions{ContentType: &contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return key, nil
}

func (s *Supabase) Open(key string) (io.ReadCloser, error) {
	data, err := s.client.DownloadFile(s.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Supabase) Delete(key string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{key})
	return err
}
