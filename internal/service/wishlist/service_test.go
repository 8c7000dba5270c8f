package wishlist_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/config"
	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/service/wishlist"
	"github.com/Dula827/booknest-frontend/internal/session"
)

func newService(t *testing.T, upstream *httptest.Server) *wishlist.Service {
	t.Helper()
	u, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	sess, err := session.New(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, err)
	require.NoError(t, sess.Set("tok"))
	cfg := config.Config{DomainAPI: config.DomainAPI{Host: u.Hostname(), Port: u.Port()}}
	return wishlist.NewService(zap.NewExample().Named("test"), cfg, sess)
}

func TestService_List_SeriesFilterAndBearer(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/wishlist", r.URL.Path)
		require.Equal(t, "Discworld", r.URL.Query().Get("series_name"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.WishlistItem{{ID: 1, Title: "Mort"}})
	}))
	defer srv.Close()

	svc := newService(t, srv)
	items, code, err := svc.List(context.Background(), model.WishlistFilters{SeriesName: "Discworld"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, items, 1)
	require.Equal(t, "Mort", items[0].Title)
}

func TestService_Search_DecodesItemsEnvelope(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/wishlist/search", r.URL.Path)
		require.Equal(t, "mort", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]model.WishlistItem{
			"items": {{ID: 1, Title: "Mort", Author: "Pratchett"}},
		})
	}))
	defer srv.Close()

	svc := newService(t, srv)
	items, code, err := svc.Search(context.Background(), "mort")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, items, 1)
	require.Equal(t, "Pratchett", items[0].Author)
}

func TestService_SeriesNames_URL(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/wishlist/wlseriesnames", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]model.SeriesName{{SeriesName: "Discworld"}})
	}))
	defer srv.Close()

	svc := newService(t, srv)
	names, code, err := svc.SeriesNames(context.Background())
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, names, 1)
	require.Equal(t, "Discworld", names[0].SeriesName)
}

func TestService_MoveToBooks(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/wishlist/8/move-to-books", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"purchase_date":"2024-02-02","reading_status":"Unread","images":["/uploads/8_cover.jpg"]}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	purchased, err := time.Parse(time.DateOnly, "2024-02-02")
	require.NoError(t, err)

	svc := newService(t, srv)
	code, err := svc.MoveToBooks(context.Background(), 8, model.MoveToBooksRequest{
		PurchaseDate:  model.Date{Time: purchased},
		ReadingStatus: model.ReadingStatusUnread,
		Images:        []string{"/uploads/8_cover.jpg"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
}

func TestService_Delete_RaisesOnNonSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/wishlist/5", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newService(t, srv)
	code, err := svc.Delete(context.Background(), 5)
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, code)

	var reqErr *errs.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "wishlist: delete", reqErr.Op)
}
