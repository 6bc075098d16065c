// Package cache implementa un read-through cache Redis para los métodos de
// pago, que cambian rara vez pero se consultan en cada venta. El stock nunca
// se cachea: la disponibilidad debe ser visible de inmediato tras cada commit.
package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// PaymentMethodCache puerto del cache; Noop cuando Redis no está configurado.
type PaymentMethodCache interface {
	Get(ctx context.Context, id string) (*entity.PaymentMethod, bool, error)
	Set(ctx context.Context, id string, m *entity.PaymentMethod, ttl time.Duration) error
}

// NoopPaymentMethodCache cache nulo: siempre miss, nunca falla.
type NoopPaymentMethodCache struct{}

func (NoopPaymentMethodCache) Get(_ context.Context, _ string) (*entity.PaymentMethod, bool, error) {
	return nil, false, nil
}

func (NoopPaymentMethodCache) Set(_ context.Context, _ string, _ *entity.PaymentMethod, _ time.Duration) error {
	return nil
}

// RedisPaymentMethodCache cache sobre Redis con serialización JSON.
type RedisPaymentMethodCache struct {
	client *redis.Client
}

// NewRedisPaymentMethodCache construye el cache con su propio cliente.
func NewRedisPaymentMethodCache(addr, password string, db int) *RedisPaymentMethodCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisPaymentMethodCache{client: client}
}

// Ping verifica la conexión.
func (c *RedisPaymentMethodCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisPaymentMethodCache) Close() error {
	return c.client.Close()
}

func (c *RedisPaymentMethodCache) Get(ctx context.Context, id string) (*entity.PaymentMethod, bool, error) {
	val, err := c.client.Get(ctx, key(id)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var m entity.PaymentMethod
	if err := json.Unmarshal([]byte(val), &m); err != nil {
		return nil, false, err
	}
	return &m, true, nil
}

func (c *RedisPaymentMethodCache) Set(ctx context.Context, id string, m *entity.PaymentMethod, ttl time.Duration) error {
	if m == nil {
		return nil
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(id), payload, ttl).Err()
}

func key(id string) string { return "payment_method:" + id }

var _ repository.PaymentMethodRepository = (*CachedPaymentMethodRepository)(nil)

// CachedPaymentMethodRepository decora el repositorio con el cache:
// GetByID pasa por el cache, ListActive va siempre a la BD.
type CachedPaymentMethodRepository struct {
	inner repository.PaymentMethodRepository
	cache PaymentMethodCache
	ttl   time.Duration
}

// NewCachedPaymentMethodRepository construye el decorador.
func NewCachedPaymentMethodRepository(inner repository.PaymentMethodRepository, cache PaymentMethodCache, ttl time.Duration) *CachedPaymentMethodRepository {
	return &CachedPaymentMethodRepository{inner: inner, cache: cache, ttl: ttl}
}

// GetByID intenta el cache y cae a la BD; un fallo del cache nunca rompe la venta.
func (r *CachedPaymentMethodRepository) GetByID(id string) (*entity.PaymentMethod, error) {
	ctx := context.Background()
	if m, ok, err := r.cache.Get(ctx, id); err == nil && ok {
		return m, nil
	}
	m, err := r.inner.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m != nil {
		_ = r.cache.Set(ctx, id, m, r.ttl)
	}
	return m, nil
}

// ListActive delega a la BD.
func (r *CachedPaymentMethodRepository) ListActive() ([]*entity.PaymentMethod, error) {
	return r.inner.ListActive()
}
