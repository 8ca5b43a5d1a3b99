package ingestion

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/imagecodec"
	"go-storefront/internal/pkg/logger"
	"go-storefront/internal/pkg/storage"
	"os"
	"path"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// derivativeNamespace seeds the name-based UUIDs of derivatives.
var derivativeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("go-storefront/assets"))

// Transformer renders the primary asset and the thumbnail of an accepted
// upload and publishes both to the asset store.
type Transformer struct {
	assets   storage.AssetStore
	scratch  storage.ScratchStore
	settings TransformSettings
}

func NewTransformer(assets storage.AssetStore, scratch storage.ScratchStore, settings TransformSettings) *Transformer {
	return &Transformer{assets: assets, scratch: scratch, settings: settings}
}

// DerivativeKeys derives the storage keys for source under settings. The
// same bytes and settings always give the same keys.
func DerivativeKeys(source []byte, settings TransformSettings) (primary, thumbnail string) {
	sum := sha256.Sum256(source)
	name := append(sum[:], []byte(fmt.Sprintf("|%s|%d|%d|%d|%d",
		imagecodec.OutputFormat,
		settings.PrimaryMaxPx,
		settings.ThumbnailPx,
		settings.PrimaryQuality,
		settings.ThumbnailQuality,
	))...)
	id := uuid.NewSHA1(derivativeNamespace, name).String()

	primary = path.Join(settings.Prefix, id+imagecodec.OutputExtension)
	thumbnail = path.Join(settings.Prefix, id+"-thumb"+imagecodec.OutputExtension)
	return primary, thumbnail
}

// Transform renders and stores both derivatives of f, then deletes its temp
// file. Keys that already exist are kept as they are.
func (t *Transformer) Transform(ctx context.Context, f *types.UploadedFile) (types.TransformedAsset, error) {
	if !f.Outcome.IsAccepted() {
		return types.TransformedAsset{}, fmt.Errorf("%s: refusing to transform a file that was not accepted", f.OriginalName)
	}

	source, err := os.ReadFile(f.TemporaryPath)
	if err != nil {
		return types.TransformedAsset{}, t.fail(DecodeFailure, f, err)
	}

	img, err := imagecodec.Decode(source)
	if err != nil {
		return types.TransformedAsset{}, t.fail(DecodeFailure, f, err)
	}

	primaryKey, thumbKey := DerivativeKeys(source, t.settings)

	var bounds image.Rectangle
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		primary := imagecodec.Fit(img, t.settings.PrimaryMaxPx)
		bounds = primary.Bounds()
		return t.render(gctx, f, primary, primaryKey, t.settings.PrimaryQuality)
	})
	g.Go(func() error {
		thumb := imagecodec.Cover(img, t.settings.ThumbnailPx)
		return t.render(gctx, f, thumb, thumbKey, t.settings.ThumbnailQuality)
	})
	if err := g.Wait(); err != nil {
		return types.TransformedAsset{}, err
	}

	if err := t.scratch.Delete(f.TemporaryPath); err != nil {
		logger.Warning.Printf("failed to delete temp file %s: %v", f.TemporaryPath, err)
	}

	return types.TransformedAsset{
		Filename:      f.OriginalName,
		PrimaryPath:   primaryKey,
		PrimaryFormat: imagecodec.OutputFormat,
		ThumbnailPath: thumbKey,
		WidthPx:       bounds.Dx(),
		HeightPx:      bounds.Dy(),
	}, nil
}

func (t *Transformer) render(ctx context.Context, f *types.UploadedFile, img image.Image, key string, quality int) error {
	data, err := imagecodec.EncodeWebP(img, quality)
	if err != nil {
		return t.fail(EncodeFailure, f, err)
	}

	if err := ctx.Err(); err != nil {
		return t.fail(StorageWriteFailure, f, err)
	}

	if _, err := t.assets.Write(ctx, key, data, imagecodec.OutputContentType); err != nil && !errors.Is(err, storage.ErrObjectExists) {
		return t.fail(StorageWriteFailure, f, err)
	}
	return nil
}

func (t *Transformer) fail(kind TransformErrorKind, f *types.UploadedFile, err error) error {
	return &TransformError{Kind: kind, File: f.OriginalName, Err: err}
}
