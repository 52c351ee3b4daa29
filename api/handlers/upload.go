package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medvault/medvault-api/models"
)

// maxFileSize caps a single uploaded file at 10MB
const maxFileSize = 10 << 20

var (
	// ErrUnsupportedFileType is returned before anything touches disk or the database
	ErrUnsupportedFileType = errors.New("only PDF and image files are allowed")
	// ErrFileTooLarge is returned for files over the per-file size cap
	ErrFileTooLarge = errors.New("file exceeds the 10MB size limit")
)

var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/jpg":       true,
	"image/gif":       true,
	"image/webp":      true,
}

// Storage stages uploads on local disk under Dir and forwards identity images to
// Cloudinary. Lab-report attachments stay on disk.
type Storage struct {
	Dir   string
	Cloud *cloudinary.Cloudinary
}

// SaveFile validates and writes one multipart file into the upload directory. The
// stored name is unique per upload; the original name survives in the metadata.
func (s *Storage) SaveFile(fh *multipart.FileHeader) (models.ReportFile, error) {
	mimeType := fh.Header.Get("Content-Type")
	if !allowedMimeTypes[mimeType] {
		return models.ReportFile{}, ErrUnsupportedFileType
	}
	if fh.Size > maxFileSize {
		return models.ReportFile{}, ErrFileTooLarge
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return models.ReportFile{}, err
	}

	src, err := fh.Open()
	if err != nil {
		return models.ReportFile{}, err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
	path := filepath.Join(s.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return models.ReportFile{}, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return models.ReportFile{}, err
	}

	return models.ReportFile{
		Filename:     name,
		OriginalName: fh.Filename,
		MimeType:     mimeType,
		Path:         path,
		Size:         written,
	}, nil
}

// UploadImage stages an image locally, pushes it to the given Cloudinary folder and
// removes the local copy. Returns the hosted URL.
func (s *Storage) UploadImage(ctx context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	staged, err := s.SaveFile(fh)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(staged.Path); err != nil {
			zap.S().Warnw("failed to remove staged upload", "path", staged.Path, "error", err)
		}
	}()

	if s.Cloud == nil {
		return "", errors.New("cloudinary is not configured")
	}
	resp, err := s.Cloud.Upload.Upload(ctx, staged.Path, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}

// RemoveFiles deletes report attachments from disk, best effort. A file that is
// already gone or undeletable is logged and skipped.
func (s *Storage) RemoveFiles(files []models.ReportFile) {
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil {
			zap.S().Warnw("failed to delete report file", "path", f.Path, "error", err)
		}
	}
}
