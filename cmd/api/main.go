package main

import (
	"context"
	"errors"
	"fmt"
	config "go-storefront/configs"
	"go-storefront/internal/common/enum"
	database "go-storefront/internal/pkg/db"
	"go-storefront/internal/pkg/jwt"
	"go-storefront/internal/pkg/logger"
	"go-storefront/internal/pkg/metrics"
	"go-storefront/internal/pkg/rabbitmq"
	"go-storefront/internal/pkg/redis"
	"go-storefront/internal/pkg/storage"
	"go-storefront/internal/pkg/storage/local"
	s3aws "go-storefront/internal/pkg/storage/s3"
	"go-storefront/internal/pkg/validation"
	serverApp "go-storefront/internal/server"
	ingestionService "go-storefront/internal/service/ingestion"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Go Storefront Asset API
// @version         1.0
// @description     Product image ingestion for the storefront catalog

// @contact.name    API Support

// @BasePath        /api
func main() {
	logger.Setup()

	env, err := config.GetEnv()
	if err != nil {
		logger.Error.Println("Error getting environment", err)
		panic(err)
	}

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	// Setup Redis (optional)
	redisClient, err := setupRedis(ctx, env)
	if err != nil {
		logger.Error.Println("Error setting up Redis", err)
		cancel()
		return
	}

	// Setup RabbitMQ (optional)
	rabbit, err := setupRabbitMQ(ctx, env)
	if err != nil {
		logger.Error.Println("Error setting up RabbitMQ", err)
		cancel()
		return
	}

	// Setup Database (optional)
	db, err := setupDB(env, redisClient)
	if err != nil {
		logger.Error.Println("Error setting up Database", err)
		cancel()
		return
	}

	// Setup Server
	setupServer(&config.SetupServerDto{
		Rds:    redisClient,
		Env:    env,
		Ctx:    &ctx,
		Cancel: cancel,
		Db:     db,
		Wg:     &wg,
		Rb:     rabbit,
	})
}

func setupRedis(ctx context.Context, env *config.Config) (*redis.Client, error) {
	if env.RedisHost == "" {
		logger.Info.Println("REDIS_HOST not set, redis disabled")
		return nil, nil
	}
	return redis.Setup(ctx, &redis.Config{
		Host:     env.RedisHost,
		Username: env.RedisUser,
		Port:     env.RedisPort,
		Password: env.RedisPass,
		PoolSize: env.RedisPoolSize,
	})
}

func setupRabbitMQ(ctx context.Context, env *config.Config) (*rabbitmq.ConnectionManager, error) {
	if env.RabbitHost == "" {
		logger.Info.Println("RABBIT_HOST not set, catalog events disabled")
		return nil, nil
	}
	return rabbitmq.NewConnectionManager(ctx, &rabbitmq.Config{
		Username:       env.RabbitUser,
		Password:       env.RabbitPass,
		Host:           env.RabbitHost,
		Port:           env.RabbitPort,
		ConnectionName: "go-storefront-api",
	})
}

func setupDB(env *config.Config, rds *redis.Client) (*database.Database, error) {
	if env.DBHost == "" {
		logger.Info.Println("DB_HOST not set, ingestion audit disabled")
		return nil, nil
	}
	return database.Setup(&database.Config{
		Host:      env.DBHost,
		Port:      env.DBPort,
		User:      env.DBUser,
		Password:  env.DBPass,
		Database:  env.DBName,
		SSLMode:   "disable",
		Driver:    env.DBDriver,
		Cache:     env.DBCache,
		Rds:       rds,
		CacheTime: time.Duration(env.DBCacheTTLSeconds) * time.Second,
	})
}

func setupAssetStore(ctx context.Context, env *config.Config, rds *redis.Client) (storage.AssetStore, string, error) {
	switch env.AssetBackend {
	case enum.STORAGE_S3:
		var cache redis.IRedis
		if rds != nil {
			cache = rds
		}
		store, err := s3aws.NewS3Client(ctx, s3aws.S3Config{
			AWSRegion:          env.AWSRegion,
			AWSAccessKeyID:     env.AWSAccessKeyID,
			AWSSecretAccessKey: env.AWSSecretAccessKey,
		}, env.AWSBucketName, cache)
		return store, "", err
	default:
		store, err := local.NewAssetStore(env.AssetDir, strings.TrimSuffix(env.AppBaseURL, "/")+"/static")
		if err != nil {
			return nil, "", err
		}
		return store, store.BaseDir(), nil
	}
}

func setupServer(payload *config.SetupServerDto) {
	rds := payload.Rds
	env := payload.Env
	ctx := payload.Ctx
	cancel := payload.Cancel
	wg := payload.Wg
	rb := payload.Rb
	db := payload.Db

	defer func() {
		if rds != nil {
			_ = rds.Close()
		}
		if rb != nil {
			_ = rb.Close()
		}
		if db != nil {
			_ = db.Close()
		}
		cancel()
		wg.Wait()
	}()

	err := validation.Setup()
	if err != nil {
		logger.Error.Println("Failed to setup validation")
		panic(err)
	}

	if env.JWTSecret != "" {
		jwt.Setup(env.JWTSecret)
	}

	assets, staticDir, err := setupAssetStore(*ctx, env, rds)
	if err != nil {
		logger.Error.Println("Failed to setup asset storage", err)
		return
	}

	pool, err := serverApp.NewWorkerPool(env.WorkerPoolSize)
	if err != nil {
		logger.Error.Println("Failed to setup worker pool", err)
		return
	}
	defer pool.Release()

	var publisher *rabbitmq.Publisher
	if rb != nil {
		publisher, err = rabbitmq.NewPublisher(*ctx, rb)
		if err != nil {
			panic(err)
		}
		defer publisher.Close()
	}

	deps := &serverApp.Dependencies{
		Db:        db,
		Rabbit:    rb,
		Publisher: publisher,
		Scratch:   local.NewScratchStore(env.ScratchDir),
		Assets:    assets,
		Pool:      pool,
		Metrics:   metrics.Default(),
		Limits: ingestionService.Limits{
			MaxFiles:       env.MaxFilesPerRequest,
			MaxFileSize:    env.MaxFileSizeBytes,
			MaxDimensionPx: env.MaxDimensionPx,
		},
		Settings: ingestionService.TransformSettings{
			Prefix:           env.AssetPrefix,
			PrimaryMaxPx:     env.PrimaryMaxPx,
			ThumbnailPx:      env.ThumbnailPx,
			PrimaryQuality:   env.PrimaryQuality,
			ThumbnailQuality: env.ThumbnailQuality,
		},
		EventsQueue:  env.AssetEventsQueue,
		AuthRequired: env.AuthRequired,
		BaseURL:      env.AppBaseURL,
		StaticDir:    staticDir,
	}
	if rds != nil {
		deps.Redis = rds
	}

	if env.AppEnv == enum.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}
	e := gin.Default()
	serverApp.Setup(e, *ctx, deps)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", env.AppPort),
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.HTTP.Println("========= Server Started =========")
		logger.HTTP.Println("=========", env.AppPort, "=========")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Println("Server error:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.HTTP.Println("========= Server Shutting Down =========")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error.Println("Server shutdown error:", err)
	}
}
