package books_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/config"
	"github.com/Dula827/booknest-frontend/internal/errs"
	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/service/books"
	"github.com/Dula827/booknest-frontend/internal/session"
)

func newService(t *testing.T, upstream *httptest.Server, token string) *books.Service {
	t.Helper()
	u, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	sess, err := session.New(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, err)
	if token != "" {
		require.NoError(t, sess.Set(token))
	}
	cfg := config.Config{DomainAPI: config.DomainAPI{Host: u.Hostname(), Port: u.Port()}}
	return books.NewService(zap.NewExample().Named("test"), cfg, sess)
}

func TestService_List_EncodesFiltersAndBearer(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/books/getallwf", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(model.BookList{
			Books:      []model.Book{{ID: 1, Title: "Dune", Author: "Herbert"}},
			Pagination: model.Pagination{TotalPages: 3, Page: 2},
		})
	}))
	defer srv.Close()

	svc := newService(t, srv, "tok-abc")
	list, code, err := svc.List(context.Background(), model.BookFilters{
		Page:          2,
		Limit:         10,
		SortBy:        "author",
		SortOrder:     "desc",
		Category:      "Science Fiction",
		ReadingStatus: model.ReadingStatusUnread,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list.Books, 1)
	require.Equal(t, 3, list.Pagination.TotalPages)

	require.Equal(t, "Bearer tok-abc", gotAuth)
	require.Equal(t, "2", gotQuery.Get("page"))
	require.Equal(t, "10", gotQuery.Get("limit"))
	require.Equal(t, "author", gotQuery.Get("sort_by"))
	require.Equal(t, "desc", gotQuery.Get("sort_order"))
	require.Equal(t, "Science Fiction", gotQuery.Get("category"))
	require.Equal(t, "Unread", gotQuery.Get("reading_status"))
}

func TestService_Create_RaisesOnNonSuccess(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	svc := newService(t, srv, "tok")
	_, code, err := svc.Create(context.Background(), model.CreateBookRequest{Title: "Dune"})
	require.Error(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, code)

	var reqErr *errs.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, "books: create", reqErr.Op)
}

func TestService_Get_MapsUnauthorized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// no token stored: the header is absent and the 401 maps to ErrUnauthorized
	svc := newService(t, srv, "")
	_, code, err := svc.Get(context.Background(), 7)
	require.Equal(t, http.StatusUnauthorized, code)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestService_Search(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/books/search", r.URL.Path)
		require.Equal(t, "dune", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string][]model.Book{"books": {{ID: 1, Title: "Dune"}}})
	}))
	defer srv.Close()

	svc := newService(t, srv, "tok")
	found, code, err := svc.Search(context.Background(), "dune")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, found, 1)
	require.Equal(t, "Dune", found[0].Title)
}
