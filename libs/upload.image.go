package libs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog/log"
)

const sniffLength = 3072

var ErrNotAnImage = errors.New("uploaded file is not an image")

// SniffImage checks the leading bytes of r and returns a reader that still
// yields the full content, along with the detected MIME type.
func SniffImage(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, sniffLength)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, mt.String(), fmt.Errorf("%w (detected %s)", ErrNotAnImage, mt.String())
	}

	return io.MultiReader(bytes.NewReader(head), r), mt.String(), nil
}

// LocalImageStore writes product images under a directory on disk. The
// reference kept in the product row is the bare file name.
type LocalImageStore struct {
	dir string
}

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save writes through a temporary file and renames it into place, so an
// existing image with the same name is replaced whole.
func (s *LocalImageStore) Save(_ context.Context, name string, r io.Reader) (string, error) {
	name = filepath.Base(name)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	log.Debug().Str("file", name).Str("dir", s.dir).Msg("image stored")
	return name, nil
}

func (s *LocalImageStore) Delete(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
