package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore keeps opaque blobs under generated keys. Callers never pick the
// key themselves; Save returns it and the row owning the blob records it.
type FileStore interface {
	// Save writes the blob under a fresh key inside dir and returns the key.
	Save(dir, ext string, r io.Reader) (string, error)
	// Open returns the blob for a key previously returned by Save.
	Open(key string) (io.ReadCloser, error)
	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(key string) error
}

// Disk stores blobs on the local filesystem under Root.
type Disk struct {
	Root string
}

func NewDisk(root string) *Disk {
	return &Disk{Root: root}
}

func (d *Disk) Save(dir, ext string, r io.Reader) (string, error) {
	key := filepath.Join(dir, uuid.New().String()+ext)
	full := filepath.Join(d.Root, key)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage dir: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	// Make sure the blob is durable before the caller records its key.
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(full)
		return "", fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return key, nil
}

func (d *Disk) Open(key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(d.Root, key))
}

func (d *Disk) Delete(key string) error {
	err := os.Remove(filepath.Join(d.Root, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
