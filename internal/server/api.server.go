package serverApp

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"go-storefront/docs"
	database "go-storefront/internal/pkg/db"
	"go-storefront/internal/pkg/metrics"
	"go-storefront/internal/pkg/middleware"
	"go-storefront/internal/pkg/rabbitmq"
	"go-storefront/internal/pkg/redis"
	"go-storefront/internal/pkg/storage"
	"go-storefront/internal/repository"

	assetHandler "go-storefront/internal/handler/asset"
	ingestionHandler "go-storefront/internal/handler/ingestion"
	assetService "go-storefront/internal/service/asset"
	ingestionService "go-storefront/internal/service/ingestion"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the HTTP layer wires into services.
// Db, Redis, Rabbit and Publisher are nil when not configured.
type Dependencies struct {
	Db        *database.Database
	Redis     redis.IRedis
	Rabbit    *rabbitmq.ConnectionManager
	Publisher *rabbitmq.Publisher
	Scratch   storage.ScratchStore
	Assets    storage.AssetStore
	Pool      *ants.Pool
	Metrics   *metrics.Metrics

	Limits       ingestionService.Limits
	Settings     ingestionService.TransformSettings
	EventsQueue  string
	AuthRequired bool
	BaseURL      string
	// StaticDir is served under /static when set.
	StaticDir string
}

// Setup initializes the HTTP server with middleware and routes
func Setup(engine *gin.Engine, ctx context.Context, deps *Dependencies) {
	InitMiddleware(engine)

	// Set swagger host dynamically from APP_BASE_URL
	if parsed, err := url.Parse(deps.BaseURL); err == nil {
		docs.SwaggerInfo.Host = parsed.Host
		if strings.HasPrefix(deps.BaseURL, "https") {
			docs.SwaggerInfo.Schemes = []string{"https"}
		} else {
			docs.SwaggerInfo.Schemes = []string{"http"}
		}
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/health", healthHandler(deps))

	if deps.StaticDir != "" {
		engine.Static("/static", deps.StaticDir)
	}

	e := engine.Group(BasePath())
	InitRoutes(e, ctx, deps)
}

// BasePath returns the base API path
func BasePath() string {
	return "/api"
}

// InitMiddleware initializes global middleware
func InitMiddleware(e *gin.Engine) {
	e.Use(middleware.CorsMiddleware())
	e.Use(middleware.RequestInit())
	e.Use(middleware.ResponseInit())
}

func InitRoutes(e *gin.RouterGroup, ctx context.Context, deps *Dependencies) {
	// setup repo
	rp := repository.New(deps.Db)

	var catalog ingestionService.CatalogPublisher = ingestionService.NoopCatalog{}
	if deps.Publisher != nil {
		catalog = ingestionService.NewRabbitCatalog(deps.Publisher, deps.EventsQueue)
	}

	// === Ingestion ===
	IngestionService := ingestionService.NewService(ctx, rp, ingestionService.Options{
		Limits:   deps.Limits,
		Settings: deps.Settings,
		Scratch:  deps.Scratch,
		Assets:   deps.Assets,
		Pool:     deps.Pool,
		Metrics:  deps.Metrics,
		Catalog:  catalog,
	})
	IngestionHandler := ingestionHandler.NewHandler(ctx, IngestionService, deps.AuthRequired)
	IngestionHandler.NewRoutes(e)

	// === Asset ===
	AssetService := assetService.NewService(ctx, deps.Assets, deps.Settings.Prefix)
	AssetHandler := assetHandler.NewHandler(ctx, AssetService)
	AssetHandler.NewRoutes(e)
}

func healthHandler(deps *Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := func(enabled, healthy bool) gin.H {
			switch {
			case !enabled:
				return gin.H{"status": "disabled"}
			case healthy:
				return gin.H{"status": "healthy"}
			}
			return gin.H{"status": "unhealthy"}
		}

		rbHealthy := false
		if deps.Rabbit != nil {
			conn := deps.Rabbit.GetConnection()
			rbHealthy = conn != nil && !conn.IsClosed()
		}

		c.JSON(http.StatusOK, gin.H{
			"status": http.StatusOK,
			"service": gin.H{
				"rabbitmq": status(deps.Rabbit != nil, rbHealthy),
				"redis":    status(deps.Redis != nil, deps.Redis != nil && deps.Redis.Ping() == nil),
				"database": status(deps.Db != nil, deps.Db != nil && deps.Db.Ping() == nil),
			},
		})
	}
}
