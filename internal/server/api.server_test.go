package serverApp

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/metrics"
	"go-storefront/internal/pkg/storage/local"
	ingestionService "go-storefront/internal/service/ingestion"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	assets, err := local.NewAssetStore(filepath.Join(root, "assets"), "http://example.test/static")
	require.NoError(t, err)

	pool, err := NewWorkerPool(2)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	e := gin.New()
	Setup(e, context.Background(), &Dependencies{
		Scratch:   local.NewScratchStore(filepath.Join(root, "scratch")),
		Assets:    assets,
		Pool:      pool,
		Metrics:   metrics.MustNew(prometheus.NewRegistry()),
		Limits:    ingestionService.DefaultLimits(),
		Settings:  ingestionService.DefaultTransformSettings(),
		BaseURL:   "http://example.test",
		StaticDir: assets.BaseDir(),
	})
	return e
}

func TestHealthReportsDisabledDependencies(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"status": 200,
		"service": {
			"rabbitmq": {"status": "disabled"},
			"redis": {"status": "disabled"},
			"database": {"status": "disabled"}
		}
	}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	newTestEngine(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadThenFetch(t *testing.T) {
	e := newTestEngine(t)

	var img bytes.Buffer
	require.NoError(t, jpeg.Encode(&img, image.NewGray(image.Rect(0, 0, 640, 480)), nil))

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="images"; filename="hat.jpg"`}
	h["Content-Type"] = []string{"image/jpeg"}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/images", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var results []types.UploadResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 640, results[0].Width)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assets/url?key="+url.QueryEscape(results[0].ThumbnailPath), nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "http://example.test/static/"+results[0].ThumbnailPath)

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/"+results[0].FinalPath, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
