package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// ErrUnsupportedFileType is returned for uploads that are not JPG or PNG.
var ErrUnsupportedFileType = fmt.Errorf("only JPG and PNG files are supported")

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// LocalStorage writes uploaded photos to the local filesystem under a
// public static-serving root. The database keeps only the relative path.
type LocalStorage struct {
	basePath  string // filesystem root, e.g. "Image"
	urlPrefix string // public path prefix, e.g. "/Image"
}

// NewLocalStorage creates a LocalStorage rooted at basePath.
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath:  basePath,
		urlPrefix: urlPrefix,
	}, nil
}

// SavePhoto stores an uploaded image under the given subdirectory with a
// random filename and returns the generated file name and its public
// relative path.
func (ls *LocalStorage) SavePhoto(fileHeader *multipart.FileHeader, subPath string) (string, string, error) {
	if fileHeader == nil {
		return "", "", fmt.Errorf("no file uploaded")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return "", "", ErrUnsupportedFileType
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := filepath.Join(ls.basePath, subPath)
	if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
		return "", "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	uniqueFilename := strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	dstPath := filepath.Join(fullDirPath, uniqueFilename)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file")
		return "", "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	relPath := ls.urlPrefix + "/" + filepath.ToSlash(filepath.Join(subPath, uniqueFilename))
	return uniqueFilename, relPath, nil
}

// Delete removes a previously stored photo given its public relative path.
// A missing file is not an error; the row is authoritative.
func (ls *LocalStorage) Delete(relPath string) error {
	trimmed := strings.TrimPrefix(relPath, ls.urlPrefix)
	trimmed = strings.TrimPrefix(trimmed, "/")
	fullPath := filepath.Join(ls.basePath, filepath.FromSlash(trimmed))

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete stored file")
		return fmt.Errorf("failed to delete stored file: %w", err)
	}
	return nil
}
