package images_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Dula827/booknest-frontend/config"
	"github.com/Dula827/booknest-frontend/internal/model"
	"github.com/Dula827/booknest-frontend/internal/service/images"
)

func newService(t *testing.T, upstream *httptest.Server) *images.Service {
	t.Helper()
	u, err := url.Parse(upstream.URL)
	require.NoError(t, err)
	cfg := config.Config{ImageService: config.ImageService{Host: u.Hostname(), Port: u.Port()}}
	return images.NewService(zap.NewExample().Named("test"), cfg)
}

func TestService_Upload(t *testing.T) {
	t.Parallel()

	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotFilename = r.FormValue("filename")
		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, gotFilename, header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"filePath": "/uploads/" + gotFilename})
	}))
	defer srv.Close()

	svc := newService(t, srv)
	path, code, err := svc.Upload(context.Background(), model.UploadFile{
		Name:    "dune cover.jpg",
		Content: []byte("jpeg-bytes"),
	}, 42)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "/uploads/"+gotFilename, path)

	// {ownerID}_{timestamp}_{randomSuffix}_{name with whitespace collapsed}
	require.Regexp(t, regexp.MustCompile(`^42_\d+_[0-9a-f]{9}_dune_cover\.jpg$`), gotFilename)
}

func TestService_Upload_NoPathInResponse(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	svc := newService(t, srv)
	_, _, err := svc.Upload(context.Background(), model.UploadFile{Name: "x.png", Content: []byte("png")}, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no path returned")
}

func TestService_Delete(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := newService(t, srv)
	code, err := svc.Delete(context.Background(), "/uploads/42_123_abc_cover.jpg")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "/images/42_123_abc_cover.jpg", gotPath)
}

func TestService_Delete_UpstreamFailure(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := newService(t, srv)
	code, err := svc.Delete(context.Background(), "/uploads/missing.jpg")
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, code)
}
