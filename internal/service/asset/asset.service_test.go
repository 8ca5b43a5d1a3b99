package asset

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-storefront/internal/pkg/storage"
	"go-storefront/internal/pkg/storage/local"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct {
	storage.AssetStore
}

func (brokenStore) URL(context.Context, string) (string, error) {
	return "", errors.New("signing failed")
}

func TestResolveURL(t *testing.T) {
	store, err := local.NewAssetStore(t.TempDir(), "http://localhost:8080/static")
	require.NoError(t, err)
	_, err = store.Write(t.Context(), "products/abc.webp", []byte("webp"), "image/webp")
	require.NoError(t, err)

	svc := NewService(context.Background(), store, "products")

	t.Run("existing asset", func(t *testing.T) {
		res := svc.ResolveURL(t.Context(), "products/abc.webp")
		require.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, URLResponse{Key: "products/abc.webp", URL: "http://localhost:8080/static/products/abc.webp"}, res.Data)
	})

	t.Run("leading slash", func(t *testing.T) {
		res := svc.ResolveURL(t.Context(), "/products/abc.webp")
		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("missing asset", func(t *testing.T) {
		res := svc.ResolveURL(t.Context(), "products/nope.webp")
		assert.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("outside the prefix", func(t *testing.T) {
		for _, key := range []string{"", "secrets.txt", "products/../etc/passwd", "productsx/a.webp"} {
			res := svc.ResolveURL(t.Context(), key)
			assert.Equal(t, http.StatusBadRequest, res.Code, key)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		res := NewService(context.Background(), brokenStore{}, "products").ResolveURL(t.Context(), "products/a.webp")
		assert.Equal(t, http.StatusInternalServerError, res.Code)
		assert.EqualError(t, res.Error, "signing failed")
	})
}
