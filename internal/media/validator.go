package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Upload categories map to subdirectories under the base upload dir.
const (
	CategoryProduct = "product"
	CategoryBanner  = "banner"
	CategoryAvatar  = "avatar"
)

const maxImageDimension = 4096

var (
	ErrUnknownCategory = errors.New("unknown upload category")
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilename = errors.New("invalid filename")
)

var allowedMIMETypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

var filenamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// Result describes the outcome of validating or storing an image.
type Result struct {
	Valid  bool
	Name   string
	Path   string
	Size   int64
	MIME   string
	Width  int
	Height int
	Errors []string
}

// Validator checks and stores catalog images on local disk.
type Validator struct {
	baseDir string
	maxSize int64
	logger  *slog.Logger
}

// NewValidator constructs Validator rooted at baseDir.
func NewValidator(baseDir string, maxSize int64, logger *slog.Logger) *Validator {
	return &Validator{baseDir: baseDir, maxSize: maxSize, logger: logger}
}

// Check runs the acceptance checks (category, type, size, dimensions)
// without persisting.
func (v *Validator) Check(file *multipart.FileHeader, category string) (*Result, error) {
	if _, err := v.categoryDir(category); err != nil {
		return nil, err
	}

	result := &Result{Name: file.Filename, Size: file.Size}

	if file.Size > v.maxSize {
		result.Errors = append(result.Errors, fmt.Sprintf("file exceeds maximum size of %d bytes", v.maxSize))
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, v.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	mime := mimetype.Detect(data)
	result.MIME = mime.String()
	if !allowedMIMETypes[mime.String()] {
		result.Errors = append(result.Errors, fmt.Sprintf("unsupported file type %s", mime.String()))
		return result, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		result.Errors = append(result.Errors, "file is not a decodable image")
		return result, nil
	}
	result.Width = cfg.Width
	result.Height = cfg.Height
	if cfg.Width > maxImageDimension || cfg.Height > maxImageDimension {
		result.Errors = append(result.Errors, fmt.Sprintf("image dimensions %dx%d exceed %dpx limit", cfg.Width, cfg.Height, maxImageDimension))
	}

	result.Valid = len(result.Errors) == 0
	return result, nil
}

// Store validates the image and writes it under the category directory.
// With no custom name a random name is generated.
func (v *Validator) Store(file *multipart.FileHeader, category, customName string) (*Result, error) {
	dir, err := v.categoryDir(category)
	if err != nil {
		return nil, err
	}

	result, err := v.Check(file, category)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return result, nil
	}

	name := customName
	if name == "" {
		name = uuid.NewString() + extensionFor(result.MIME)
	} else if err := validateFilename(name); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	target := filepath.Join(dir, name)
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	result.Name = name
	result.Path = filepath.Join(category, name)
	v.logger.Info("image stored", slog.String("path", result.Path), slog.Int64("size", result.Size))
	return result, nil
}

// Delete removes a previously stored file.
func (v *Validator) Delete(category, filename string) error {
	dir, err := v.categoryDir(category)
	if err != nil {
		return err
	}
	if err := validateFilename(filename); err != nil {
		return err
	}

	target := filepath.Join(dir, filename)
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, filename)
		}
		return fmt.Errorf("delete file: %w", err)
	}
	v.logger.Info("image deleted", slog.String("category", category), slog.String("name", filename))
	return nil
}

func (v *Validator) categoryDir(category string) (string, error) {
	switch category {
	case CategoryProduct, CategoryBanner, CategoryAvatar:
		return filepath.Join(v.baseDir, category), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

func validateFilename(name string) error {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") || !filenamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	}
	return ""
}
