package repositories

import (
	"boutique-admin/models"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const productListCacheKey = "products_list"

// ProductCache caches the product listing in Redis. A nil client turns every
// method into a no-op.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func (c *ProductCache) GetProducts(ctx context.Context) ([]models.Product, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	cached, err := c.client.Get(ctx, productListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("product cache read failed")
		}
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal(cached, &products); err != nil {
		log.Warn().Err(err).Msg("product cache entry is corrupt")
		return nil, false
	}
	return products, true
}

func (c *ProductCache) SetProducts(ctx context.Context, products []models.Product) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, productListCacheKey, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("product cache write failed")
	}
}

func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}
