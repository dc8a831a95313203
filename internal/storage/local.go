package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LocalImageStore implements ImageStore on a local directory.
type LocalImageStore struct {
	dir     string
	allowed map[string]bool
}

// NewLocalImageStore creates the upload directory if needed.
func NewLocalImageStore(dir string, allowedExts []string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	allowed := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(ext)] = true
	}

	return &LocalImageStore{dir: dir, allowed: allowed}, nil
}

func (s *LocalImageStore) Allowed(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return s.allowed[strings.ToLower(filename[idx+1:])]
}

// Save sanitizes the client filename, appends a nanosecond timestamp to
// keep names unique, and writes the stream to the upload directory. Two
// uploads of the same name in the same instant could still collide; that
// risk is accepted.
func (s *LocalImageStore) Save(filename string, reader io.Reader) (string, error) {
	base := unsafeChars.ReplaceAllString(filepath.Base(filename), "_")
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	storedName := fmt.Sprintf("%s_%d%s", name, time.Now().UTC().UnixNano(), ext)
	fullPath := filepath.Join(s.dir, storedName)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return storedName, nil
}

func (s *LocalImageStore) Delete(storedName string) error {
	if storedName == "" || storedName == DefaultImage {
		return nil
	}

	fullPath := filepath.Join(s.dir, filepath.Base(storedName))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func (s *LocalImageStore) Exists(storedName string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(storedName)))
	return err == nil
}
