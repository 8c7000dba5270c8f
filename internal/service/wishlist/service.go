package wishlist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
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

// Service is the wishlist client of the domain API.
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

// do issues a JSON request and decodes the response into out when it is non-nil.
func (s *Service) do(ctx context.Context, op, method, u string, body, out any) (int, error) {
	var reader *bytes.Buffer
	if body != nil {
		reader = bytes.NewBuffer(nil)
		if err := json.NewEncoder(reader).Encode(body); err != nil {
			return http.StatusBadRequest, errors.Wrap(err, op)
		}
	}
	var r *http.Request
	var err error
	if reader != nil {
		r, err = http.NewRequestWithContext(ctx, method, u, reader)
	} else {
		r, err = http.NewRequestWithContext(ctx, method, u, http.NoBody)
	}
	if err != nil {
		return http.StatusBadRequest, errors.Wrap(err, op)
	}
	if body != nil {
		r.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
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
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return http.StatusBadRequest, errors.Wrap(err, op)
		}
	}
	return resp.StatusCode, nil
}

func (s *Service) Create(ctx context.Context, req model.WishlistItemRequest) (model.WishlistItem, int, error) {
	var out model.WishlistItem
	code, err := s.do(ctx, "wishlist: create", http.MethodPost, s.baseURL()+"/wishlist", req, &out)
	return out, code, err
}

func (s *Service) Update(ctx context.Context, id int, req model.WishlistItemRequest) (int, error) {
	return s.do(ctx, "wishlist: update", http.MethodPut, fmt.Sprintf("%s/wishlist/%d", s.baseURL(), id), req, nil)
}

func (s *Service) Delete(ctx context.Context, id int) (int, error) {
	return s.do(ctx, "wishlist: delete", http.MethodDelete, fmt.Sprintf("%s/wishlist/%d", s.baseURL(), id), nil, nil)
}

func (s *Service) Get(ctx context.Context, id int) (model.WishlistItem, int, error) {
	var out model.WishlistItem
	code, err := s.do(ctx, "wishlist: get", http.MethodGet, fmt.Sprintf("%s/wishlist/%d", s.baseURL(), id), nil, &out)
	return out, code, err
}

func (s *Service) List(ctx context.Context, filters model.WishlistFilters) ([]model.WishlistItem, int, error) {
	u := s.baseURL() + "/wishlist"
	if filters.SeriesName != "" {
		params := url.Values{}
		params.Set("series_name", filters.SeriesName)
		u += "?" + params.Encode()
	}
	var out []model.WishlistItem
	code, err := s.do(ctx, "wishlist: list", http.MethodGet, u, nil, &out)
	return out, code, err
}

func (s *Service) Search(ctx context.Context, query string) ([]model.WishlistItem, int, error) {
	params := url.Values{}
	params.Set("query", query)
	var out struct {
		Items []model.WishlistItem `json:"items"`
	}
	code, err := s.do(ctx, "wishlist: search", http.MethodGet, s.baseURL()+"/wishlist/search?"+params.Encode(), nil, &out)
	return out.Items, code, err
}

func (s *Service) SeriesNames(ctx context.Context) ([]model.SeriesName, int, error) {
	var out []model.SeriesName
	code, err := s.do(ctx, "wishlist: series names", http.MethodGet, s.baseURL()+"/wishlist/wlseriesnames", nil, &out)
	return out, code, err
}

// MoveToBooks asks the domain API to create a book from the wishlist item and
// remove the item, atomically on the server side.
func (s *Service) MoveToBooks(ctx context.Context, id int, req model.MoveToBooksRequest) (int, error) {
	return s.do(ctx, "wishlist: move to books", http.MethodPost, fmt.Sprintf("%s/wishlist/%d/move-to-books", s.baseURL(), id), req, nil)
}
