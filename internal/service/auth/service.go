package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/config"
	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/session"
)

// Service is the auth/profile client of the domain API. Login and Register
// carry no bearer token; Profile does.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	cfg     config.DomainAPI
	session *session.Store
}

func NewService(log *zap.Logger, cfg config.Config, sess *session.Store) *Service {
	return &Service{
		log:     log,
		client:  &http.Client{Timeout: time.Minute},
		cfg:     cfg.DomainAPI,
		session: sess,
	}
}

func (s *Service) baseURL() string {
	return fmt.Sprintf("http://%s/api", net.JoinHostPort(s.cfg.Host, s.cfg.Port))
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, int, error) {
	return s.authenticate(ctx, "auth: login", s.baseURL()+"/auth/login", req)
}

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, int, error) {
	return s.authenticate(ctx, "auth: register", s.baseURL()+"/auth/register", req)
}

func (s *Service) authenticate(ctx context.Context, op, u string, body any) (model.AuthResponse, int, error) {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(body); err != nil {
		return model.AuthResponse{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, u, b)
	if err != nil {
		return model.AuthResponse{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	r.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	resp, err := s.client.Do(r)
	if err != nil {
		return model.AuthResponse{}, http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return model.AuthResponse{}, resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out model.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.AuthResponse{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}

// Profile returns the user's identity plus server-computed statistics.
func (s *Service) Profile(ctx context.Context) (model.UserProfile, int, error) {
	const op = "auth: profile"
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL()+"/auth/profile", http.NoBody)
	if err != nil {
		return model.UserProfile{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	if token, ok := s.session.Token(); ok {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.client.Do(r)
	if err != nil {
		return model.UserProfile{}, http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return model.UserProfile{}, resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out model.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.UserProfile{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}
