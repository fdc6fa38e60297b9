// Package storage keeps product photos on local disk. Products reference
// them by relative path, which doubles as the static URL under /uploads.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type PhotoStore struct {
	dir string
}

func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &PhotoStore{dir: dir}, nil
}

func (s *PhotoStore) Dir() string { return s.dir }

// Save copies the uploaded file under a fresh uuid name and returns the path
// stored on the product.
func (s *PhotoStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(file.Filename)
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes a stored photo. A failure only loses disk space, so it is
// logged rather than surfaced.
func (s *PhotoStore) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Error().Err(err).Msgf("Error removing photo %s", path)
	}
}
