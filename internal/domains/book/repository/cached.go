package repository

import (
	"context"
	"time"

	"libreria-storefront/internal/domains/book/model"
	"libreria-storefront/pkg/cache"
	"libreria-storefront/pkg/logger"
)

const listCacheKey = "catalog:books"

// CachedRepository decorates a book repository with cache-aside on the
// full listing. Mutations invalidate the cached list so the catalog never
// serves a stale shelf after an admin edit. A broken cache degrades to
// the remote service; it never takes the catalog down.
type CachedRepository struct {
	inner RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(inner RepositoryInterface, c cache.Cache, ttl time.Duration) *CachedRepository {
	return &CachedRepository{inner: inner, cache: c, ttl: ttl}
}

func (r *CachedRepository) FetchAll(ctx context.Context) ([]model.Book, error) {
	var cached []model.Book
	found, err := r.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		logger.Error("catalog cache read failed", err)
	}
	if found {
		return cached, nil
	}

	books, err := r.inner.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, listCacheKey, books, r.ttl); err != nil {
		logger.Error("catalog cache write failed", err)
	}
	return books, nil
}

func (r *CachedRepository) FetchByID(ctx context.Context, id string) (*model.Book, error) {
	return r.inner.FetchByID(ctx, id)
}

func (r *CachedRepository) Update(ctx context.Context, id string, req model.UpdateRequest) (*model.Book, error) {
	updated, err := r.inner.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *CachedRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, listCacheKey); err != nil {
		logger.Error("catalog cache invalidation failed", err)
	}
}
