package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/config"
	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
)

// Service is the client of the file-upload/image-serving service.
type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.ImageService
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log,
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.ImageService,
	}
}

func (s *Service) baseURL() string {
	return fmt.Sprintf("http://%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port))
}

// deriveFilename builds {ownerID}_{timestamp}_{randomSuffix}_{sanitizedName}
// so concurrent uploads for the same owning record never collide.
func deriveFilename(ownerID int, name string) string {
	sanitized := strings.Join(strings.Fields(name), "_")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d_%d_%s_%s", ownerID, time.Now().UnixMilli(), suffix, sanitized)
}

// Upload posts the file as multipart form data and returns the stored path.
func (s *Service) Upload(ctx context.Context, file model.UploadFile, ownerID int) (string, int, error) {
	const op = "images: upload"

	filename := deriveFilename(ownerID, file.Name)
	body := bytes.NewBuffer(nil)
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", http.StatusBadRequest, errors.Wrap(err, op)
	}
	if _, err := part.Write(file.Content); err != nil {
		return "", http.StatusBadRequest, errors.Wrap(err, op)
	}
	if err := mw.WriteField("filename", filename); err != nil {
		return "", http.StatusBadRequest, errors.Wrap(err, op)
	}
	if err := mw.Close(); err != nil {
		return "", http.StatusBadRequest, errors.Wrap(err, op)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL()+"/upload", body)
	if err != nil {
		return "", http.StatusBadRequest, errors.Wrap(err, op)
	}
	r.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := s.client.Do(r)
	if err != nil {
		return "", http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return "", resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out struct {
		FilePath string `json:"filePath"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", http.StatusBadRequest, errors.Wrap(err, op)
	}
	if out.FilePath == "" {
		return "", resp.StatusCode, errors.Wrap(errors.New("no path returned"), op)
	}
	return out.FilePath, resp.StatusCode, nil
}

// Delete removes a stored file by the trailing segment of its stored path.
func (s *Service) Delete(ctx context.Context, storedPath string) (int, error) {
	const op = "images: delete"
	parts := strings.Split(storedPath, "/")
	filename := parts[len(parts)-1]
	if filename == "" {
		return http.StatusBadRequest, errors.Wrap(errors.New("empty filename"), op)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL()+"/images/"+filename, http.NoBody)
	if err != nil {
		return http.StatusBadRequest, errors.Wrap(err, op)
	}
	resp, err := s.client.Do(r)
	if err != nil {
		return http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	return resp.StatusCode, nil
}
