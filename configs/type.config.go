package config

import (
	"context"
	"go-storefront/internal/common/enum"
	database "go-storefront/internal/pkg/db"
	"go-storefront/internal/pkg/rabbitmq"
	"go-storefront/internal/pkg/redis"
	"sync"
)

// Config holds all application configuration loaded from environment variables.
// Empty REDIS_HOST, RABBIT_HOST or DB_HOST disable that dependency.
type Config struct {
	AppEnv     enum.EnvEnum `env:"APP_ENV" envDefault:"development" validate:"enum"`
	AppPort    int          `env:"APP_PORT" envDefault:"8080" validate:"gte=1,lte=65535"`
	AppBaseURL string       `env:"APP_BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`

	ScratchDir   string                  `env:"SCRATCH_DIR" envDefault:"./tmp/uploads" validate:"required"`
	AssetDir     string                  `env:"ASSET_DIR" envDefault:"./storage/assets" validate:"required"`
	AssetPrefix  string                  `env:"ASSET_PREFIX" envDefault:"products"`
	AssetBackend enum.StorageBackendEnum `env:"ASSET_BACKEND" envDefault:"local" validate:"enum"`

	MaxFilesPerRequest int   `env:"MAX_FILES_PER_REQUEST" envDefault:"10" validate:"gte=1,lte=100"`
	MaxFileSizeBytes   int64 `env:"MAX_FILE_SIZE_BYTES" envDefault:"10485760" validate:"gte=1"`
	MaxDimensionPx     int   `env:"MAX_DIMENSION_PX" envDefault:"4096" validate:"gte=1"`
	PrimaryMaxPx       int   `env:"PRIMARY_MAX_PX" envDefault:"2000" validate:"gte=1"`
	ThumbnailPx        int   `env:"THUMBNAIL_PX" envDefault:"400" validate:"gte=1"`
	PrimaryQuality     int   `env:"PRIMARY_QUALITY" envDefault:"80" validate:"gte=1,lte=100"`
	ThumbnailQuality   int   `env:"THUMBNAIL_QUALITY" envDefault:"60" validate:"gte=1,lte=100,ltfield=PrimaryQuality"`
	WorkerPoolSize     int   `env:"WORKER_POOL_SIZE" envDefault:"16" validate:"gte=1"`

	AuthRequired bool   `env:"AUTH_REQUIRED" envDefault:"false"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"" validate:"required_if=AuthRequired true"`

	RedisHost     string `env:"REDIS_HOST" envDefault:""`
	RedisPort     int    `env:"REDIS_PORT" envDefault:"6379"`
	RedisUser     string `env:"REDIS_USER" envDefault:"default"`
	RedisPass     string `env:"REDIS_PASS" envDefault:""`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	RabbitHost       string `env:"RABBIT_HOST" envDefault:""`
	RabbitPort       int    `env:"RABBIT_PORT" envDefault:"5672"`
	RabbitUser       string `env:"RABBIT_USER" envDefault:"guest"`
	RabbitPass       string `env:"RABBIT_PASS" envDefault:"guest"`
	AssetEventsQueue string `env:"ASSET_EVENTS_QUEUE" envDefault:"catalog.assets.ingested"`

	DBHost            string              `env:"DB_HOST" envDefault:""`
	DBPort            int                 `env:"DB_PORT" envDefault:"5432"`
	DBUser            string              `env:"DB_USER" envDefault:"postgres"`
	DBPass            string              `env:"DB_PASS" envDefault:""`
	DBName            string              `env:"DB_NAME" envDefault:"storefront"`
	DBDriver          database.DriverEnum `env:"DB_DRIVER" envDefault:"postgres" validate:"enum"`
	DBCache           bool                `env:"DB_CACHE" envDefault:"false"`
	DBCacheTTLSeconds int                 `env:"DB_CACHE_TTL_SECONDS" envDefault:"300" validate:"gte=0"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"" validate:"required_if=AssetBackend s3"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"" validate:"required_if=AssetBackend s3"`
	AWSBucketName      string `env:"AWS_BUCKET_NAME" envDefault:"" validate:"required_if=AssetBackend s3"`
}

// SetupServerDto contains dependencies for server setup. Optional
// dependencies are nil when disabled.
type SetupServerDto struct {
	Ctx    *context.Context
	Cancel context.CancelFunc
	Wg     *sync.WaitGroup
	Env    *Config
	Db     *database.Database
	Rds    *redis.Client
	Rb     *rabbitmq.ConnectionManager
}
