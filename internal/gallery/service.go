package gallery

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bananex-be/internal/logger"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type Service interface {
	Upload(ctx context.Context, title, filename string, file io.Reader) (*Image, error)
	ListAll(ctx context.Context) ([]Image, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo      Repository
	uploadDir string
}

func NewService(repo Repository, uploadDir string) Service {
	return &service{repo: repo, uploadDir: uploadDir}
}

// Upload writes the file under a random name so uploads cannot
// collide or traverse outside the upload directory.
func (s *service) Upload(ctx context.Context, title, filename string, file io.Reader) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedType
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	stored := uuid.NewString() + ext
	path := filepath.Join(s.uploadDir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	written, err := io.Copy(dst, file)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("write file: %w", err)
	}
	if written == 0 {
		os.Remove(path)
		return nil, ErrEmptyFile
	}

	img := &Image{
		Title:    title,
		FilePath: path,
		URL:      "/uploads/" + stored,
	}
	if err := s.repo.Create(ctx, img); err != nil {
		os.Remove(path)
		return nil, err
	}
	return img, nil
}

func (s *service) ListAll(ctx context.Context) ([]Image, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// The row wins over the file. A leftover file is harmless, a
	// dangling row is not.
	if err := os.Remove(img.FilePath); err != nil && !os.IsNotExist(err) {
		logger.FromCtx(ctx).Warn("failed to remove image file",
			zap.String("path", img.FilePath), zap.Error(err))
	}
	return nil
}
