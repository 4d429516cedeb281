package container

import (
	"context"
	"fmt"

	bookhandler "libreria-storefront/internal/domains/book/handler"
	bookrepo "libreria-storefront/internal/domains/book/repository"
	carthandler "libreria-storefront/internal/domains/cart/handler"
	cartrepo "libreria-storefront/internal/domains/cart/repository"
	cataloghandler "libreria-storefront/internal/domains/catalog/handler"
	sessionhandler "libreria-storefront/internal/domains/session/handler"
	sessionrepo "libreria-storefront/internal/domains/session/repository"

	"libreria-storefront/internal/config"
	infracache "libreria-storefront/internal/infrastructure/cache"
	"libreria-storefront/pkg/logger"
	"libreria-storefront/pkg/token"
)

// Container wires config, infrastructure, remote service clients and
// handlers. Built once at startup; the application fails fast when any
// dependency cannot be initialized.
type Container struct {
	Config *config.Config

	Redis  *infracache.RedisCache
	Tokens *token.Manager

	BookRepo    bookrepo.RepositoryInterface
	CartRepo    cartrepo.RepositoryInterface
	SessionRepo sessionrepo.RepositoryInterface

	CatalogHandler *cataloghandler.Handler
	BookHandler    *bookhandler.Handler
	CartHandler    *carthandler.Handler
	SessionHandler *sessionhandler.Handler
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.App.Environment)

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	tokens := token.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	// The catalog listing is cache-aside over Redis; admin mutations on
	// books invalidate the cached list through the same decorator.
	bookRepository := bookrepo.NewCachedRepository(
		bookrepo.NewHTTPRepository(cfg.Services.BooksBaseURL, cfg.Services.Timeout),
		redisCache,
		cfg.Cache.CatalogTTL,
	)
	cartRepository := cartrepo.NewHTTPRepository(cfg.Services.CartBaseURL, cfg.Services.Timeout)
	sessionRepository := sessionrepo.NewHTTPRepository(cfg.Services.AuthBaseURL, cfg.Services.Timeout)

	catalogHandler := cataloghandler.NewHandler(bookRepository)
	bookHandler := bookhandler.NewHandler(bookRepository, tokens)
	cartHandler := carthandler.NewHandler(cartRepository, bookRepository, tokens)
	sessionHandler := sessionhandler.NewHandler(sessionRepository, tokens, redisCache, cfg.Session.TTL)

	return &Container{
		Config:         cfg,
		Redis:          redisCache,
		Tokens:         tokens,
		BookRepo:       bookRepository,
		CartRepo:       cartRepository,
		SessionRepo:    sessionRepository,
		CatalogHandler: catalogHandler,
		BookHandler:    bookHandler,
		CartHandler:    cartHandler,
		SessionHandler: sessionHandler,
	}, nil
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
}
