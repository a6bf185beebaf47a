package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/radiostream/server/internal/logging"
)

// AssetKind identifies one of the two fixed image slots.
type AssetKind string

const (
	AssetCover      AssetKind = "cover"
	AssetBackground AssetKind = "background"

	// CoverFilename and BackgroundFilename are the canonical on-disk names.
	// Uploads are stored under these names regardless of their original
	// filename, so only one cover and one background can ever exist.
	CoverFilename      = "cover.png"
	BackgroundFilename = "background.png"
)

// Asset errors surfaced to the admin console as validation notices.
var (
	ErrNoFile          = errors.New("no file was supplied")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrUnknownKind     = errors.New("unknown asset kind")
)

// AssetService validates and stores the cover and background images under
// fixed filenames inside the public static directory.
type AssetService struct {
	staticDir         string
	allowedExtensions map[string]bool
}

// NewAssetService creates an AssetService rooted at staticDir, creating the
// directory if needed.
func NewAssetService(staticDir string) (*AssetService, error) {
	if strings.TrimSpace(staticDir) == "" {
		return nil, fmt.Errorf("static directory cannot be empty")
	}

	absDir, err := filepath.Abs(staticDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, err
	}

	extSet := make(map[string]bool)
	for _, ext := range []string{".png", ".jpg", ".jpeg", ".gif", ".webp"} {
		extSet[ext] = true
	}

	return &AssetService{
		staticDir:         absDir,
		allowedExtensions: extSet,
	}, nil
}

// Allowed reports whether a filename's extension is on the upload allow-list.
// Matching is case-insensitive.
func (s *AssetService) Allowed(filename string) bool {
	return s.allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Accept validates an uploaded file by its original filename's extension
// (case-insensitive allow-list) and stores the content under the canonical
// filename for kind, overwriting any prior asset. The original name and
// metadata are deliberately discarded.
//
// The content is written to a temporary file in the same directory and renamed
// into place, so a failed upload never clobbers the existing asset.
func (s *AssetService) Accept(kind AssetKind, filename string, content io.Reader) error {
	if strings.TrimSpace(filename) == "" {
		return ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !s.allowedExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}

	target, err := s.Path(kind)
	if err != nil {
		return err
	}

	tmp := filepath.Join(s.staticDir, ".upload-"+uuid.New().String())
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finish upload: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to store upload: %w", err)
	}

	logging.Log.WithFields(map[string]interface{}{
		"kind": string(kind),
		"path": target,
	}).Debug("Stored uploaded asset")
	return nil
}

// RemoveBackground deletes the background file if present. A missing file is
// not an error, and a filesystem failure is logged but swallowed: disabling
// the background does not depend on the file actually being removed.
func (s *AssetService) RemoveBackground() {
	path, _ := s.Path(AssetBackground)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.Log.WithField("path", path).WithError(err).Debug("Could not delete background file")
	}
}

// Exists reports whether the asset of the given kind is present on disk.
func (s *AssetService) Exists(kind AssetKind) bool {
	path, err := s.Path(kind)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Path returns the absolute canonical path for an asset kind.
func (s *AssetService) Path(kind AssetKind) (string, error) {
	switch kind {
	case AssetCover:
		return filepath.Join(s.staticDir, CoverFilename), nil
	case AssetBackground:
		return filepath.Join(s.staticDir, BackgroundFilename), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// StaticDir returns the directory holding the public assets.
func (s *AssetService) StaticDir() string {
	return s.staticDir
}
