package lending

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
	"github.com/Dula827/booknest-frontend/pkg/circuit_breaker"
)

// Service is the lending-ledger client of the domain API.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	cfg     config.DomainAPI
	session *session.Store
	cb      circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config, sess *session.Store) *Service {
	return &Service{
		log:     log,
		client:  &http.Client{Timeout: time.Minute},
		cfg:     cfg.DomainAPI,
		session: sess,
		cb:      circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) baseURL() string {
	return fmt.Sprintf("http://%s/api", net.JoinHostPort(s.cfg.Host, s.cfg.Port))
}

func (s *Service) authorize(r *http.Request) {
	if token, ok := s.session.Token(); ok {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// Create lends a book out; the server flips the book's lending status to
// "Lent Out" as a side effect.
func (s *Service) Create(ctx context.Context, req model.CreateLendingRequest) (model.LendingRecord, int, error) {
	const op = "lending: create"
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(req); err != nil {
		return model.LendingRecord{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL()+"/lending", b)
	if err != nil {
		return model.LendingRecord{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	r.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	s.authorize(r)
	resp, err := s.client.Do(r)
	if err != nil {
		return model.LendingRecord{}, http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return model.LendingRecord{}, resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out model.LendingRecord
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.LendingRecord{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}

func (s *Service) List(ctx context.Context) ([]model.LendingRecord, int, error) {
	return s.list(ctx, "lending: list", s.baseURL()+"/lending")
}

func (s *Service) ListByBook(ctx context.Context, bookID int) ([]model.LendingRecord, int, error) {
	return s.list(ctx, "lending: list by book", fmt.Sprintf("%s/lending/book/%d", s.baseURL(), bookID))
}

func (s *Service) list(ctx context.Context, op, u string) ([]model.LendingRecord, int, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, op)
	}
	s.authorize(r)
	resp, err := s.client.Do(r)
	if err != nil {
		return nil, http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out []model.LendingRecord
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}

// MarkReturned sets the actual return date; the server flips the record to
// "Returned" and the book back to "Available".
func (s *Service) MarkReturned(ctx context.Context, id int, returnDate string) (int, error) {
	const op = "lending: mark returned"
	b := bytes.NewBuffer(nil)
	body := struct {
		ReturnDate string `json:"return_date"`
	}{ReturnDate: returnDate}
	if err := json.NewEncoder(b).Encode(body); err != nil {
		return http.StatusBadRequest, errors.Wrap(err, op)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s/lending/%d/return", s.baseURL(), id), b)
	if err != nil {
		return http.StatusBadRequest, errors.Wrap(err, op)
	}
	r.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	s.authorize(r)
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
