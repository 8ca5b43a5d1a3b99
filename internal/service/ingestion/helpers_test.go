package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/metrics"
	"go-storefront/internal/pkg/storage/local"
	"go-storefront/internal/repository"

	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradient(w, h), &jpeg.Options{Quality: 85}))
	return buf.Bytes()
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	require.NoError(t, enc.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func alphaPNGBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 10, A: 10})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func gifBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{color.Black, color.White})
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))
	return buf.Bytes()
}

type testPart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func imagePart(filename, contentType string, data []byte) testPart {
	return testPart{field: ImageField, filename: filename, contentType: contentType, data: data}
}

func multipartBody(t *testing.T, parts ...testPart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for _, p := range parts {
		h := make(textproto.MIMEHeader)
		if p.filename != "" {
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.filename))
		} else {
			h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, p.field))
		}
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		w, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = w.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func multipartReader(t *testing.T, parts ...testPart) *multipart.Reader {
	t.Helper()
	body, contentType := multipartBody(t, parts...)
	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	return multipart.NewReader(body, params["boundary"])
}

type fixture struct {
	svc        *Service
	scratchDir string
	assetDir   string
}

type fixtureOption func(*Options)

func newFixture(t *testing.T, rp *repository.IRepository, opts ...fixtureOption) *fixture {
	t.Helper()
	root := t.TempDir()
	scratchDir := filepath.Join(root, "scratch")
	assetDir := filepath.Join(root, "assets")

	assets, err := local.NewAssetStore(assetDir, "http://localhost/static")
	require.NoError(t, err)

	pool, err := ants.NewPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	o := Options{
		Limits:   DefaultLimits(),
		Settings: DefaultTransformSettings(),
		Scratch:  local.NewScratchStore(scratchDir),
		Assets:   assets,
		Pool:     pool,
		Metrics:  metrics.MustNew(prometheus.NewRegistry()),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &fixture{
		svc:        NewService(context.Background(), rp, o).(*Service),
		scratchDir: scratchDir,
		assetDir:   assetDir,
	}
}

// files lists every regular file below dir.
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if os.IsNotExist(err) {
			return filepath.SkipDir
		}
		if err != nil {
			return err
		}
		if !d.IsDir() {
			out = append(out, path)
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

// scratchFile writes data to the fixture's scratch store as an accepted
// upload.
func (f *fixture) scratchFile(t *testing.T, name string, data []byte) *types.UploadedFile {
	t.Helper()
	require.NoError(t, f.svc.scratch.EnsureDir())
	path, err := f.svc.scratch.Write(fmt.Sprintf("%d-%s", len(listFiles(t, f.scratchDir)), name), data)
	require.NoError(t, err)
	file := &types.UploadedFile{
		FieldName:     ImageField,
		OriginalName:  name,
		TemporaryPath: path,
		SizeBytes:     int64(len(data)),
	}
	require.NoError(t, file.SetOutcome(types.Accepted()))
	return file
}
