package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hirehub/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

var (
	ErrUploadFailed  = errors.New("upload failed")
	ErrNotConfigured = errors.New("resume storage not configured")
)

// StoredFile is the reference recorded on an entity after a successful
// upload.
type StoredFile struct {
	URL         string
	PublicID    string
	DownloadURL string
}

type ResumeStorage interface {
	Upload(ctx context.Context, content []byte, filename string) (StoredFile, error)
}

// CloudinaryStorage streams resume PDFs to Cloudinary under a fixed
// folder, as raw resources so stored bytes come back unmodified. Single
// attempt, no retry: the provider is an external, already-reliable
// dependency.
type CloudinaryStorage struct {
	client *cloudinary.Cloudinary
	folder string
	logger *log.Logger
}

func NewCloudinaryStorage(cfg config.CloudinaryConfig, logger *log.Logger) (*CloudinaryStorage, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return &CloudinaryStorage{client: nil, folder: "resumes", logger: logger}, nil
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, err
	}
	return &CloudinaryStorage{client: cld, folder: "resumes", logger: logger}, nil
}

func (s *CloudinaryStorage) Upload(ctx context.Context, content []byte, filename string) (StoredFile, error) {
	if s == nil || s.client == nil {
		return StoredFile{}, ErrNotConfigured
	}
	if len(content) == 0 {
		return StoredFile{}, ErrUploadFailed
	}

	publicID := fmt.Sprintf("%s/%d-%s", s.folder, time.Now().UnixMilli(), uuid.NewString())

	res, err := s.client.Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		PublicID:     publicID,
		ResourceType: "raw",
		Format:       "pdf",
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[Storage] upload failed | file=%s error=%v", filename, err)
		}
		return StoredFile{}, ErrUploadFailed
	}
	if res == nil || res.SecureURL == "" {
		return StoredFile{}, ErrUploadFailed
	}

	return StoredFile{
		URL:         res.SecureURL,
		PublicID:    res.PublicID,
		DownloadURL: res.SecureURL + "?fl_attachment=true",
	}, nil
}
