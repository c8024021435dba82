package app

import (
	"boutique-admin/config"
	"boutique-admin/controllers"
	_ "boutique-admin/docs"
	"boutique-admin/libs"
	"boutique-admin/middleware"
	"boutique-admin/repositories"
	"boutique-admin/routes"
	"boutique-admin/services"
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// App holds the HTTP router together with the connections it must release.
type App struct {
	Router *gin.Engine

	db    *config.Database
	redis *redis.Client
}

type repository interface {
	services.ProductRepository
	services.OrderRepository
}

type sqlRepository struct {
	*repositories.ProductRepository
	*repositories.OrderRepository
}

// New connects the configured backends and wires services, controllers and routes.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	repo, err := a.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	images, err := newImageStore(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.redis = config.ConnectRedis(ctx, cfg)
	var cache services.ProductCache
	if a.redis != nil {
		cache = repositories.NewProductCache(a.redis, cfg.ProductCacheTTL)
	}

	var notifier services.OrderNotifier
	if cfg.MailEnabled() {
		mailer, err := libs.NewOrderMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.OrderNotifyEmail)
		if err != nil {
			a.Close()
			return nil, err
		}
		notifier = mailer
	}

	productSvc := services.NewProductService(repo, images, cache, services.ProductServiceConfig{
		ImageNaming:   cfg.ImageNaming,
		MaxUploadSize: cfg.MaxUploadSize,
	})
	cartSvc := services.NewCartService(repo)
	orderSvc := services.NewOrderService(repo, cartSvc, notifier, services.OrderServiceConfig{
		UserID:         cfg.OrderUserID,
		InitialStateID: cfg.OrderInitialStateID,
	})

	a.Router = NewRouter(cfg.OriginURL, routes.Controllers{
		Products: controllers.NewProductController(productSvc, cfg.MaxUploadSize),
		Cart:     controllers.NewCartController(cartSvc),
		Orders:   controllers.NewOrderController(orderSvc),
	})

	return a, nil
}

func NewRouter(originURL string, ctrls routes.Controllers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(originURL))
	routes.SetupRoutes(router, ctrls)
	return router
}

func (a *App) openStore(ctx context.Context, cfg *config.Config) (repository, error) {
	if cfg.StoreDriver == "memory" {
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return repositories.NewMemoryStore(), nil
	}

	db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.db = db

	if err := db.RunMigrations(cfg.MigrationsDir); err != nil {
		db.Close()
		a.db = nil
		return nil, err
	}

	store := repositories.NewStore(db.DB)
	return sqlRepository{
		ProductRepository: repositories.NewProductRepository(store),
		OrderRepository:   repositories.NewOrderRepository(store),
	}, nil
}

func newImageStore(cfg *config.Config) (services.ImageStore, error) {
	switch cfg.ImageBackend {
	case "cloudinary":
		return libs.NewCloudinaryImageStore(cfg.CloudinaryURL, "boutique/products")
	case "local":
		return libs.NewLocalImageStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown image backend %q", cfg.ImageBackend)
	}
}

func (a *App) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
	a.db.Close()
}
