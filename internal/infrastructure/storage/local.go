package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dental-clinic-api/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrFileTooLarge     = errors.New("file exceeds the maximum allowed size")
	ErrInvalidExtension = errors.New("file extension is not allowed")
	ErrInvalidContent   = errors.New("file content does not match its extension")
)

// Extensions accepted for radiograph uploads (images, PDFs and DICOM)
// and the content type each one must sniff as. The extension alone is
// not trusted: a file named .png whose bytes are not a PNG is rejected.
var allowedContent = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
	".dcm":  "application/dicom",
}

// sniffLen covers every magic number we care about, including the
// DICOM "DICM" marker at offset 128.
const sniffLen = 512

// LocalStore writes uploaded files under a root directory and hands
// back the relative public path (served under /uploads/).
type LocalStore struct {
	root     string
	maxBytes int64
}

func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{root: cfg.Dir, maxBytes: cfg.MaxBytes}, nil
}

// Root returns the base directory, used to mount the static file server.
func (s *LocalStore) Root() string {
	return s.root
}

// MaxBytes returns the configured upload size limit.
func (s *LocalStore) MaxBytes() int64 {
	return s.maxBytes
}

// ValidateName checks the extension of an incoming file name.
func (s *LocalStore) ValidateName(originalName string) error {
	ext := strings.ToLower(filepath.Ext(originalName))
	if allowedContent[ext] == "" {
		return ErrInvalidExtension
	}
	return nil
}

// Save streams src to disk under subdir with a generated name and
// returns the relative path ("subdir/<uuid><ext>"). size is checked
// against the configured limit and the leading bytes are sniffed
// against the declared extension before anything is written.
func (s *LocalStore) Save(subdir, originalName string, src io.Reader, size int64) (string, error) {
	if err := s.ValidateName(originalName); err != nil {
		return "", err
	}
	if size > s.maxBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(originalName))

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(src, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	header = header[:n]
	if !mimetype.Detect(header).Is(allowedContent[ext]) {
		return "", ErrInvalidContent
	}
	src = io.MultiReader(bytes.NewReader(header), src)

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	name := uuid.New().String() + ext
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	// LimitReader guards against clients lying about Content-Length.
	written, err := io.Copy(dst, io.LimitReader(src, s.maxBytes+1))
	if err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(dstPath)
		return "", ErrFileTooLarge
	}

	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Remove deletes a previously saved file. Used to clean up when the
// database update after a successful write fails.
func (s *LocalStore) Remove(relPath string) error {
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(relPath)))
}
