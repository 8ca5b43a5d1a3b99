package ingestion

import (
	"context"
	types "go-storefront/internal/common/type"
	"go-storefront/internal/pkg/antivirus"
	"go-storefront/internal/pkg/metrics"
	"go-storefront/internal/pkg/storage"
	"go-storefront/internal/repository"
	"mime/multipart"
	"time"

	"github.com/panjf2000/ants/v2"
)

// ImageField is the multipart field uploads are read from.
const ImageField = "images"

// Limits bounds what Intake and the Content Validator accept.
type Limits struct {
	MaxFiles       int
	MaxFileSize    int64
	MaxDimensionPx int
}

// TransformSettings drives derivative rendering. Any change yields new
// derivative names.
type TransformSettings struct {
	Prefix           string
	PrimaryMaxPx     int
	ThumbnailPx      int
	PrimaryQuality   int
	ThumbnailQuality int
}

func DefaultLimits() Limits {
	return Limits{MaxFiles: 10, MaxFileSize: 10 << 20, MaxDimensionPx: 4096}
}

func DefaultTransformSettings() TransformSettings {
	return TransformSettings{
		Prefix:           "products",
		PrimaryMaxPx:     2000,
		ThumbnailPx:      400,
		PrimaryQuality:   80,
		ThumbnailQuality: 60,
	}
}

// MaxRequestBytes is the ceiling for a whole multipart body under l.
func (l Limits) MaxRequestBytes() int64 {
	return int64(l.MaxFiles)*l.MaxFileSize + 1<<20
}

// Options carries the collaborators of the pipeline. Scratch, Assets and
// Pool are required; the rest fall back to no-ops.
type Options struct {
	Limits   Limits
	Settings TransformSettings
	Scratch  storage.ScratchStore
	Assets   storage.AssetStore
	Scanner  antivirus.Scanner
	Pool     *ants.Pool
	Metrics  *metrics.Metrics
	Catalog  CatalogPublisher
	Now      func() time.Time
}

// RequestMeta identifies who submitted a batch.
type RequestMeta struct {
	RequestID  string
	UploadedBy string
}

type Service struct {
	ctx         context.Context
	rp          *repository.IRepository
	limits      Limits
	scratch     storage.ScratchStore
	scanner     antivirus.Scanner
	pool        *ants.Pool
	metrics     *metrics.Metrics
	catalog     CatalogPublisher
	transformer *Transformer
	now         func() time.Time
}

type IService interface {
	Ingest(ctx context.Context, mr *multipart.Reader, meta RequestMeta) *types.Response
	Limits() Limits
}

func NewService(ctx context.Context, rp *repository.IRepository, opts Options) IService {
	if rp == nil {
		rp = &repository.IRepository{}
	}
	if opts.Scanner == nil {
		opts.Scanner = antivirus.Noop{}
	}
	if opts.Catalog == nil {
		opts.Catalog = NoopCatalog{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		ctx:         ctx,
		rp:          rp,
		limits:      opts.Limits,
		scratch:     opts.Scratch,
		scanner:     opts.Scanner,
		pool:        opts.Pool,
		metrics:     opts.Metrics,
		catalog:     opts.Catalog,
		transformer: NewTransformer(opts.Assets, opts.Scratch, opts.Settings),
		now:         opts.Now,
	}
}

func (s *Service) Limits() Limits {
	return s.limits
}
