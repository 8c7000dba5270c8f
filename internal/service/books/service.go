package books

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
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

// Service is the book-catalog client of the domain API.
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

func (s *Service) Create(ctx context.Context, req model.CreateBookRequest) (model.CreateBookResponse, int, error) {
	const op = "books: create"
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(req); err != nil {
		return model.CreateBookResponse{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL()+"/books", b)
	if err != nil {
		return model.CreateBookResponse{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	r.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	s.authorize(r)
	resp, err := s.client.Do(r)
	if err != nil {
		return model.CreateBookResponse{}, http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return model.CreateBookResponse{}, resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out model.CreateBookResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.CreateBookResponse{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}

func (s *Service) Update(ctx context.Context, id int, req model.UpdateBookRequest) (int, error) {
	const op = "books: update"
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(req); err != nil {
		return http.StatusBadRequest, errors.Wrap(err, op)
	}
	r, err := http.NewRequestWithContext(ctx, http.MethodPut, fmt.Sprintf("%s/books/%d", s.baseURL(), id), b)
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

func (s *Service) Delete(ctx context.Context, id int) (int, error) {
	const op = "books: delete"
	r, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/books/%d", s.baseURL(), id), http.NoBody)
	if err != nil {
		return http.StatusBadRequest, errors.Wrap(err, op)
	}
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

// Get returns the detail payload: the book, its series siblings and the
// active lending record when the book is lent out.
func (s *Service) Get(ctx context.Context, id int) (model.BookDetails, int, error) {
	const op = "books: get"
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/books/%d", s.baseURL(), id), http.NoBody)
	if err != nil {
		return model.BookDetails{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	s.authorize(r)
	resp, err := s.client.Do(r)
	if err != nil {
		return model.BookDetails{}, http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return model.BookDetails{}, resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out model.BookDetails
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.BookDetails{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}

func (s *Service) List(ctx context.Context, filters model.BookFilters) (model.BookList, int, error) {
	const op = "books: list"
	params := url.Values{}
	page := filters.Page
	if page == 0 {
		page = 1
	}
	limit := filters.Limit
	if limit == 0 {
		limit = 10
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	sortOrder := filters.SortOrder
	if sortOrder == "" {
		sortOrder = "asc"
	}
	params.Set("sort_order", sortOrder)
	if filters.SortBy != "" {
		params.Set("sort_by", filters.SortBy)
	}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if filters.SeriesName != "" {
		params.Set("series_name", filters.SeriesName)
	}
	if filters.ReadingStatus != "" {
		params.Set("reading_status", filters.ReadingStatus)
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL()+"/books/getallwf?"+params.Encode(), http.NoBody)
	if err != nil {
		return model.BookList{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	s.authorize(r)
	resp, err := s.client.Do(r)
	if err != nil {
		return model.BookList{}, http.StatusServiceUnavailable, errors.Wrap(err, op)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return model.BookList{}, resp.StatusCode, errs.Request(op, resp.StatusCode)
	}
	var out model.BookList
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.BookList{}, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]model.Book, int, error) {
	const op = "books: search"
	params := url.Values{}
	params.Set("query", query)
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL()+"/books/search?"+params.Encode(), http.NoBody)
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
	var out struct {
		Books []model.Book `json:"books"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out.Books, resp.StatusCode, nil
}

func (s *Service) SeriesNames(ctx context.Context) ([]model.SeriesName, int, error) {
	const op = "books: series names"
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL()+"/books/seriesnames", http.NoBody)
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
	var out []model.SeriesName
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, op)
	}
	return out, resp.StatusCode, nil
}
