// Package upload stores user-submitted screenshot files on local disk.
// Files are renamed to UUIDs on save so hostile filenames never touch the
// filesystem, and stale files are reaped after a retention window.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxFileSize caps uploads at 10 MB, generous for a screenshot.
	MaxFileSize = 10 * 1024 * 1024

	// retention is how long uploads survive before Cleanup removes them.
	retention = 24 * time.Hour
)

// ErrNotFound is returned when the requested stored file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrUnsupportedType is returned for uploads outside the image allow-list.
var ErrUnsupportedType = errors.New("unsupported file type")

// ErrTooLarge is returned for uploads over MaxFileSize.
var ErrTooLarge = errors.New("file too large")

// allowedExtensions maps permitted file extensions to their content types.
// The allow-list is extension-based to match what the front-end sends.
var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// FileInfo describes one stored upload.
type FileInfo struct {
	Name         string    `json:"name"` // Stored name (UUID + extension)
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Store manages uploads under a single directory.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save validates and persists one multipart file, returning its stored info.
// The stored name is a fresh UUID with the original extension; the original
// name survives only in the returned metadata.
func (s *Store) Save(header *multipart.FileHeader) (FileInfo, error) {
	if header.Size > MaxFileSize {
		return FileInfo{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, header.Size)
	}

	extension := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedExtensions[extension]
	if !ok {
		return FileInfo{}, fmt.Errorf("%w: %q", ErrUnsupportedType, extension)
	}

	source, err := header.Open()
	if err != nil {
		return FileInfo{}, fmt.Errorf("open upload: %w", err)
	}
	defer source.Close()

	storedName := uuid.NewString() + extension
	destination, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		return FileInfo{}, fmt.Errorf("create file: %w", err)
	}
	defer destination.Close()

	written, err := io.Copy(destination, io.LimitReader(source, MaxFileSize+1))
	if err != nil {
		os.Remove(destination.Name())
		return FileInfo{}, fmt.Errorf("write file: %w", err)
	}
	if written > MaxFileSize {
		os.Remove(destination.Name())
		return FileInfo{}, fmt.Errorf("%w: stream exceeded limit", ErrTooLarge)
	}

	return FileInfo{
		Name:         storedName,
		OriginalName: header.Filename,
		Size:         written,
		ContentType:  contentType,
		UploadedAt:   time.Now().UTC(),
	}, nil
}

// Path resolves a stored name to its on-disk path, rejecting anything that
// escapes the upload directory.
func (s *Store) Path(name string) (string, error) {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// Delete removes a stored file.
func (s *Store) Delete(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Cleanup removes files older than the retention window and reports how many
// were removed. Intended to be called periodically from a background goroutine.
func (s *Store) Cleanup() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	cutoff := time.Now().Add(-retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
